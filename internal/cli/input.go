package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var contentTypes = map[string]string{
	"json":      "application/json",
	"xml":       "application/xml",
	"form":      "application/x-www-form-urlencoded",
	"multipart": "multipart/form-data",
	"jsonx":     "application/jsonx+xml",
	"soap":      "application/soap+xml",
}

// contentType maps a --from value to a media type. Values containing a slash
// are media types already; an empty value is guessed from the file name.
func contentType(from, file string) (string, error) {
	if from == "" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".xml":
			return contentTypes["xml"], nil
		case ".jsonx":
			return contentTypes["jsonx"], nil
		}
		return contentTypes["json"], nil
	}
	if strings.Contains(from, "/") {
		return from, nil
	}
	ct, ok := contentTypes[strings.ToLower(from)]
	if !ok {
		return "", fmt.Errorf("unknown input type %q", from)
	}
	return ct, nil
}

const fromUsage = "input type (json, xml, form, multipart, jsonx, soap or a media type)"

func fromFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "from", "f", "", fromUsage)
}

func colorFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVar(p, "color", "", "colour output: auto, always or never (default from config)")
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
