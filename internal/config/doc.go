// Package config provides configuration structures and utilities for tops.
// It defines where the document and chart live, how the directory service
// is reached, and how the run summary is reported.
package config
