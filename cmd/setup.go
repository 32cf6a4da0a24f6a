package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/llm"
	"github.com/dhabedank/daybyday/internal/tui"
)

var resetConfig bool

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long: `Configure daybyday with an interactive wizard.

The wizard picks the generation provider and model used for plans, day
regeneration, feed suggestions, and chat.

Configuration is saved to ~/.daybyday.yaml`,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
}

func runSetup(cmd *cobra.Command, args []string) error {
	if resetConfig {
		path := configFileName
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, configFileName)
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		fmt.Printf("  Removed: %s\n", path)
		return nil
	}

	// Run the wizard
	p := tea.NewProgram(newSetupModel())
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled {
		fmt.Println("Setup cancelled")
		return nil
	}

	// Merge the selections into any existing config.
	cfg, _ := loadFileConfig()
	cfg.Provider = finalModel.provider
	cfg.Model = finalModel.model

	path, err := saveFileConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration saved to " + path)
	fmt.Println()
	fmt.Printf("  Provider: %s\n", tui.ModelStyle.Render(cfg.Provider))
	fmt.Printf("  Model:    %s\n", tui.ModelStyle.Render(cfg.Model))
	envVar := "GEMINI_API_KEY"
	if cfg.Provider == "anthropic" {
		envVar = "ANTHROPIC_API_KEY"
	}
	if cfg.APIKey == "" && os.Getenv(envVar) == "" {
		fmt.Println()
		fmt.Printf("  %s\n", tui.WarningStyle.Render("No API key found. Set "+envVar+" or add api_key to the config file."))
	}

	return nil
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	step      int // 0=provider, 1=model
	lists     []list.Model
	provider  string
	model     string
	cancelled bool
}

type providerItem struct {
	name string
}

func (p providerItem) Title() string { return p.name }
func (p providerItem) Description() string {
	if p.name == "gemini" {
		return "Google Generative Language API (GEMINI_API_KEY)"
	}
	return "Anthropic Messages API (ANTHROPIC_API_KEY)"
}
func (p providerItem) FilterValue() string { return p.name }

type modelItem struct {
	info llm.ModelInfo
}

func (m modelItem) Title() string       { return m.info.Name }
func (m modelItem) Description() string { return m.info.Description }
func (m modelItem) FilterValue() string { return m.info.Name }

func newSetupModel() setupModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#8e44ad"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	providers := llm.Providers()
	items := make([]list.Item, len(providers))
	for i, p := range providers {
		items[i] = providerItem{name: p}
	}

	providerList := list.New(items, delegate, 60, 14)
	providerList.Title = "Select Provider"
	providerList.SetShowStatusBar(false)
	providerList.SetFilteringEnabled(false)
	providerList.Styles.Title = tui.TitleStyle

	// The model list is filled once a provider is chosen.
	modelList := list.New(nil, delegate, 60, 14)
	modelList.Title = "Select Model"
	modelList.SetShowStatusBar(false)
	modelList.SetFilteringEnabled(false)
	modelList.Styles.Title = tui.TitleStyle

	return setupModel{
		step:  0,
		lists: []list.Model{providerList, modelList},
	}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for i := range m.lists {
			m.lists[i].SetWidth(msg.Width)
			m.lists[i].SetHeight(msg.Height - 4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if m.step == 0 {
				if item, ok := m.lists[0].SelectedItem().(providerItem); ok {
					m.provider = item.name
					models := llm.ProviderModels(m.provider)
					items := make([]list.Item, len(models))
					for i, info := range models {
						items[i] = modelItem{info: info}
					}
					m.lists[1].SetItems(items)
				}
				m.step = 1
				return m, nil
			}
			if item, ok := m.lists[1].SelectedItem().(modelItem); ok {
				m.model = item.info.ID
			}
			return m, tea.Quit

		case "left", "h":
			if m.step > 0 {
				m.step--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.lists[m.step], cmd = m.lists[m.step].Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}

	steps := []string{"Provider", "Model"}
	progress := "\n  "
	for i, s := range steps {
		if i == m.step {
			progress += tui.SelectedStyle.Render(fmt.Sprintf("[%s]", s))
		} else if i < m.step {
			progress += tui.SuccessStyle.Render(fmt.Sprintf("✓ %s", s))
		} else {
			progress += tui.UnselectedStyle.Render(fmt.Sprintf("○ %s", s))
		}
		if i < len(steps)-1 {
			progress += " → "
		}
	}
	progress += "\n\n"

	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • ←: back • q: quit")

	return progress + m.lists[m.step].View() + help
}
