package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "tops"

	// DefaultDocumentPath is the Markdown document maintained by the tool.
	DefaultDocumentPath = "README.md"

	// DefaultImagePath is where the distribution chart is written.
	DefaultImagePath = "country_distribution.png"

	// TokenEnv is the environment variable holding the bearer credential.
	// The token is never read from the config file so that it does not end
	// up in a repository.
	TokenEnv = "GITHUB_TOKEN"

	// DefaultAPIBaseURL is the GitHub REST API endpoint.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultTimeout bounds each directory request.
	DefaultTimeout = 5 * time.Second

	// DefaultRequestDelay spaces directory requests apart.
	DefaultRequestDelay = 100 * time.Millisecond

	// DefaultRateLimitBackoff is the wait after a rate-limit refusal.
	DefaultRateLimitBackoff = 60 * time.Second

	// DefaultHeaderFragment identifies the leaderboard header line.
	DefaultHeaderFragment = "| Ranking | Project Name |"

	// DefaultAnchorColumn is the column after which new columns are inserted.
	DefaultAnchorColumn = "Open Issues"

	// DefaultOtherThreshold is the share, in percent, below which countries
	// are merged into "Other".
	DefaultOtherThreshold = 3.0

	// DefaultChartTitle is the title drawn above the chart.
	DefaultChartTitle = "Distribution of Repository Owners by Country"

	// DefaultChartSize is the chart width and height in pixels.
	DefaultChartSize = 1000

	// DefaultUserAgent identifies tops in directory requests.
	DefaultUserAgent = "tops (+https://github.com/ishandutta2007/Tops-of-Github)"
)

// Config holds all configuration options for tops.
// It is populated from defaults, then the config file, then CLI flags, and
// passed through the application rather than kept in global state.
type Config struct {
	// DocumentPath is the Markdown document to enrich and annotate.
	DocumentPath string

	// ImagePath is where the chart image is written.
	ImagePath string

	// Token is the optional bearer credential for the directory service.
	Token string

	// APIBaseURL is the directory service base URL.
	APIBaseURL string

	// Timeout bounds each directory request.
	Timeout time.Duration

	// RequestDelay is the minimum spacing between directory requests.
	RequestDelay time.Duration

	// RateLimitBackoff is how long to wait before retrying a rate-limited
	// request. Each request is retried at most once.
	RateLimitBackoff time.Duration

	// UserAgent is sent with every directory request.
	UserAgent string

	// HeaderFragment is the text that identifies the table header line.
	HeaderFragment string

	// AnchorColumn is the column after which the owner columns are inserted.
	AnchorColumn string

	// OtherThreshold is the share in percent below which a country is
	// merged into the "Other" slice.
	OtherThreshold float64

	// ChartTitle is drawn above the chart.
	ChartTitle string

	// ChartWidth and ChartHeight are the chart size in pixels.
	ChartWidth  int
	ChartHeight int

	// DryRun computes everything but writes no file.
	DryRun bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .tops in the current directory,
	// the user's home directory and the XDG config directory.
	ConfigFilePath string

	// JSONReport prints the run summary as JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport prints the run summary as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the summary.
	// When empty the summary goes to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DocumentPath:     DefaultDocumentPath,
		ImagePath:        DefaultImagePath,
		APIBaseURL:       DefaultAPIBaseURL,
		Timeout:          DefaultTimeout,
		RequestDelay:     DefaultRequestDelay,
		RateLimitBackoff: DefaultRateLimitBackoff,
		UserAgent:        DefaultUserAgent,
		HeaderFragment:   DefaultHeaderFragment,
		AnchorColumn:     DefaultAnchorColumn,
		OtherThreshold:   DefaultOtherThreshold,
		ChartTitle:       DefaultChartTitle,
		ChartWidth:       DefaultChartSize,
		ChartHeight:      DefaultChartSize,
	}
}

// XDGConfigDir returns the XDG config directory for tops.
// On Linux: ~/.config/tops
// On macOS: ~/Library/Application Support/tops
// On Windows: %APPDATA%\tops
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.DocumentPath == "" {
		return ErrNoDocument
	}
	if c.ImagePath == "" {
		return ErrNoImage
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.RequestDelay < 0 {
		return ErrInvalidRequestDelay
	}
	if c.RateLimitBackoff < 0 {
		return ErrInvalidBackoff
	}
	if c.HeaderFragment == "" {
		return ErrNoHeaderFragment
	}
	if c.AnchorColumn == "" {
		return ErrNoAnchorColumn
	}
	if c.OtherThreshold < 0 || c.OtherThreshold >= 100 {
		return ErrInvalidThreshold
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return ErrInvalidChartSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
