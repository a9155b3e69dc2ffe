package cli

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"suite/pkg/config"
	"suite/pkg/storage"
	"suite/pkg/todo"
	"suite/pkg/utils"
)

// Env is everything the commands touch outside the board itself.
type Env struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Fs  afero.Fs

	// LoadConfig reads the configuration; flags override file and env.
	LoadConfig func(path string, cmd *cobra.Command) (config.Config, config.Styles, error)
	// OpenStore opens the configured backend.
	OpenStore func(fsys afero.Fs, cfg config.Config) (storage.Store, error)
	// RunUI starts the interactive board for the root command.
	RunUI func(board *todo.Board, cfg config.Config, styles config.Styles) error

	// LogToFile enables the log file under /tmp when --verbose is given.
	LogToFile    bool
	BoardOptions []todo.Option
}

// DefaultEnv wires the commands to the terminal and the real filesystem.
func DefaultEnv(runUI func(*todo.Board, config.Config, config.Styles) error) Env {
	return Env{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		Fs:  afero.NewOsFs(),
		LoadConfig: func(path string, cmd *cobra.Command) (config.Config, config.Styles, error) {
			return config.LoadWithFlags(path, cmd.Flags())
		},
		OpenStore: OpenStore,
		RunUI:     runUI,
		LogToFile: true,
	}
}

// session holds what PersistentPreRunE prepares for the sub-commands.
type session struct {
	env     Env
	cfgPath string
	verbose bool

	cfg    config.Config
	styles config.Styles
	store  storage.Store
	board  *todo.Board
	opened bool
}

func (s *session) open(cmd *cobra.Command) error {
	s.opened = true
	if s.env.LogToFile {
		utils.InitLogger(s.verbose)
	}

	cfg, styles, err := s.env.LoadConfig(s.cfgPath, cmd)
	if err != nil {
		return err
	}
	utils.Log("Using %s store", cfg.Store)

	store, err := s.env.OpenStore(s.env.Fs, cfg)
	if err != nil {
		return err
	}

	s.cfg, s.styles, s.store = cfg, styles, store
	s.board = todo.Load(store, s.env.BoardOptions...)
	return nil
}

// close releases what open acquired. It runs once per Execute, after the
// command finished or failed.
func (s *session) close() error {
	if !s.opened {
		return nil
	}
	s.opened = false
	defer func() {
		if s.env.LogToFile {
			utils.CloseLogger()
		}
	}()

	store := s.store
	s.store, s.board = nil, nil
	if c, ok := store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// NewRootCmd builds the command tree. Without a sub-command the
// interactive board is started.
func NewRootCmd(env Env) *cobra.Command {
	root, _ := newRootCmd(env)
	return root
}

func newRootCmd(env Env) (*cobra.Command, *session) {
	s := &session{env: env}

	root := &cobra.Command{
		Use:   "suite",
		Short: "Suite keeps a prioritised todo list with streaks and achievements.",
		Long:  `Suite manages tasks with priorities, due dates and categories, tracks
a daily completion streak and unlocks achievements as you go.
Run it without a command to open the interactive board.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.RunUI == nil {
				return cmd.Help()
			}
			return env.RunUI(s.board, s.cfg, s.styles)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&s.cfgPath, "config", "c", "", "config file (default is ~/.config/suite/config.json)")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "enable verbose logging")
	pf.String("store", "", "storage backend: sqlite, postgres, file or memory")
	pf.String("database", "", "sqlite database path")
	pf.String("dsn", "", "postgres connection string")
	pf.String("data-file", "", "JSON file used by the file store")

	root.AddCommand(
		addCmd(s),
		listCmd(s),
		doneCmd(s),
		editCmd(s),
		deleteCmd(s),
		clearCmd(s),
		statsCmd(s),
		badgesCmd(s),
		exportCmd(s),
		importCmd(s),
	)

	if env.In != nil {
		root.SetIn(env.In)
	}
	if env.Out != nil {
		root.SetOut(env.Out)
	}
	if env.Err != nil {
		root.SetErr(env.Err)
	}
	return root, s
}

// Execute runs the command line and returns the process exit code.
func Execute(env Env, args []string) int {
	root, s := newRootCmd(env)
	root.SetArgs(args)
	err := root.Execute()
	if cerr := s.close(); cerr != nil {
		root.PrintErrln("Error:", cerr)
		if err == nil {
			err = cerr
		}
	}
	if err != nil {
		return 1
	}
	return 0
}
