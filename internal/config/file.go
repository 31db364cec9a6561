package config

import "time"

// File represents the structure of the .tops configuration file.
// Every field is optional; zero values leave the current setting alone.
type File struct {
	// Document is the Markdown document path.
	Document string `yaml:"document,omitempty"`

	// Image is the chart image path.
	Image string `yaml:"image,omitempty"`

	// Table describes how the leaderboard table is found.
	Table TableFile `yaml:"table,omitempty"`

	// GitHub configures the directory client.
	GitHub GitHubFile `yaml:"github,omitempty"`

	// Chart configures the distribution chart.
	Chart ChartFile `yaml:"chart,omitempty"`
}

// TableFile is the table section of the config file.
type TableFile struct {
	// Header is the text that identifies the header line.
	Header string `yaml:"header,omitempty"`
	// Anchor is the column after which the owner columns are inserted.
	Anchor string `yaml:"anchor,omitempty"`
}

// GitHubFile is the github section of the config file.
type GitHubFile struct {
	BaseURL          string        `yaml:"baseURL,omitempty"`
	Timeout          time.Duration `yaml:"timeout,omitempty"`
	RequestDelay     time.Duration `yaml:"requestDelay,omitempty"`
	RateLimitBackoff time.Duration `yaml:"rateLimitBackoff,omitempty"`
	UserAgent        string        `yaml:"userAgent,omitempty"`
}

// ChartFile is the chart section of the config file.
type ChartFile struct {
	Title     string  `yaml:"title,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Width     int     `yaml:"width,omitempty"`
	Height    int     `yaml:"height,omitempty"`
}

// Apply overlays the non-zero settings of the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	setString(&cfg.DocumentPath, f.Document)
	setString(&cfg.ImagePath, f.Image)
	setString(&cfg.HeaderFragment, f.Table.Header)
	setString(&cfg.AnchorColumn, f.Table.Anchor)
	setString(&cfg.APIBaseURL, f.GitHub.BaseURL)
	setString(&cfg.UserAgent, f.GitHub.UserAgent)
	setString(&cfg.ChartTitle, f.Chart.Title)

	if f.GitHub.Timeout != 0 {
		cfg.Timeout = f.GitHub.Timeout
	}
	if f.GitHub.RequestDelay != 0 {
		cfg.RequestDelay = f.GitHub.RequestDelay
	}
	if f.GitHub.RateLimitBackoff != 0 {
		cfg.RateLimitBackoff = f.GitHub.RateLimitBackoff
	}
	if f.Chart.Threshold != 0 {
		cfg.OtherThreshold = f.Chart.Threshold
	}
	if f.Chart.Width != 0 {
		cfg.ChartWidth = f.Chart.Width
	}
	if f.Chart.Height != 0 {
		cfg.ChartHeight = f.Chart.Height
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
