package config

import (
	"io"

	"github.com/spf13/pflag"
)

// flagKeys maps config keys to the flags that override them
var flagKeys = map[string]string{
	"data_dir":           "data-dir",
	"files.users":        "users-file",
	"files.vocabulary":   "vocabulary-file",
	"files.grammar":      "grammar-file",
	"files.conversation": "conversation-file",
	"storage.driver":     "storage",
	"log.level":          "log-level",
	"log.file":           "log-file",
	"ui.color":           "color",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ingles-autodidata", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.String("config", "", "path to a YAML config file")
	fs.String("data-dir", "data", "directory holding the data files")
	fs.String("users-file", "", "profiles file (default <data-dir>/users.json)")
	fs.String("vocabulary-file", "", "vocabulary file (default <data-dir>/vocabulary.json)")
	fs.String("grammar-file", "", "grammar exercises file (default <data-dir>/grammar.json)")
	fs.String("conversation-file", "", "conversation scripts file (default <data-dir>/conversation.json)")
	fs.String("storage", DriverJSON, "profile store: json or sqlite")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "write logs to this file")
	fs.String("color", ColorAuto, "colour output: auto, always or never")
	fs.String("import", "", "import vocabulary from an .xlsx or .csv file and exit")
	return fs
}
