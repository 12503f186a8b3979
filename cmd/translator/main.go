// Command translator переводит текст между английским и бенгальским
// и строит из английского варианта слаг.
//
//	translator serve -a :8080 --grpc-address :9090
//	translator translate -d bn|en "হ্যালো বিশ্ব"
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "translator",
		Short: "English ⇄ Bangla translator with slug output",
		Long: `translator calls the MyMemory API to translate text between English and Bangla
and derives a lowercase, hyphen-separated slug from the English text.

Use "translator serve" to run the HTTP (and optional gRPC) API and
"translator translate" for one-off translations from the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCommand(), newTranslateCommand())
	return root
}

func execute() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	execute()
}
