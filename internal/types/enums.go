package types

type VersionOrder string

const (
	VersionOrderLexical VersionOrder = "lexical"
	VersionOrderNumeric VersionOrder = "numeric"
	VersionOrderPep440  VersionOrder = "pep440"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
)
