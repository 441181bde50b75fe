package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme close to the editor's dracula syntax style
var (
	// Primary colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#2563EB") // Blue

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	// Background colors
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	// Border colors
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")
)

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	// Inactive panel with subtle border
	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	LanguageBadge = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgTertiary).
			Padding(0, 1)

	Copied = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

// List styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(TextSecondary)

	// The current note
	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(Secondary).
				Bold(true)

	// Cursor row while the sidebar has focus
	ListCursor = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgTertiary)
)

// Toast styles
var (
	ToastSuccess = lipgloss.NewStyle().
			Foreground(ToastSuccessTextColor).
			Background(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(ToastErrorTextColor).
			Background(Error).
			Padding(0, 1)
)

// Modal and button styles
var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalBoxDanger = ModalBox.
			BorderForeground(Error)

	ModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 1)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	ButtonDangerFocused = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(Error).
				Bold(true).
				Padding(0, 1)
)

// Footer
var Footer = lipgloss.NewStyle().
	Foreground(TextMuted).
	Background(BgSecondary)
