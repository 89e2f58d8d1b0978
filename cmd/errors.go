package cmd

import "fmt"

// NoPagesError indicates an input file that produced no gradeable pages.
type NoPagesError struct {
	Path string
}

func (e *NoPagesError) Error() string {
	return fmt.Sprintf("no gradeable pages found in %s", e.Path)
}

// UnsupportedFormatError signals an output format the exporter does not know.
type UnsupportedFormatError struct {
	Format  string
	Allowed string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (use %s)", e.Format, e.Allowed)
}
