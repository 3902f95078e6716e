package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"grogetter/internal/app"
)

var (
	home       string
	backend    string
	passphrase string
	logMode    string

	wire   *app.Wire
	appCtx *app.App
)

func Execute() error {
	return run(os.Args[1:], os.Stdout)
}

// run executes the command line args and releases the backend afterwards,
// whether or not the command succeeded.
func run(args []string, out io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	err := root.Execute()
	if wire != nil {
		if cerr := wire.Close(); err == nil {
			err = cerr
		}
	}
	wire, appCtx = nil, nil
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "grogetter",
		Short:        "Grocery lists on the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.Config{
				Home:       home,
				Backend:    backend,
				Passphrase: passphrase,
				LogMode:    logMode,
			}, nil)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			appCtx = app.New(w.Grocery)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.grogetter)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, sqlite or memory (default file)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to encrypt the file backend")
	root.PersistentFlags().StringVar(&logMode, "log", "", "log mode: dev or prod (default prod)")

	root.AddCommand(listCmd(), itemCmd(), categoryCmd(), shareCmd())
	return root
}
