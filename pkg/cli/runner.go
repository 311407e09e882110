package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
	"github.com/hashgraph-online/agent-kit-go/pkg/mirror"
	"github.com/hashgraph-online/agent-kit-go/pkg/plugins"
)

// Version is the CLI version string.
const Version = "0.1.0"

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	ConfigPath string
	Network    string
	AccountID  string
	Mode       string
	MirrorURL  string
	Tools      []string
	Verbose    bool
}

// Runner executes the CLI with injectable output streams.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new Runner writing to the process streams.
func NewRunner() *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr)
}

// NewRunnerWithWriters creates a new Runner with explicit streams.
func NewRunnerWithWriters(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr}
}

// Run parses the arguments and executes the selected command, returning the
// process exit code.
func (r *Runner) Run(args []string) int {
	state := &runtimeState{runner: r}
	root := state.newRootCommand()
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type runtimeState struct {
	runner *Runner
	flags  globalFlags
	config Config
	logger *zap.Logger
}

func (s *runtimeState) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentkit",
		Short: "Hedera agent tools from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			config, err := LoadConfig(s.flags.ConfigPath)
			if err != nil {
				return err
			}
			s.config = config.merge(s.flags)
			if _, err := s.config.AgentMode(); err != nil {
				return err
			}

			s.logger = zap.NewNop()
			if s.flags.Verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
				s.logger = logger
			}
			return nil
		},
	}

	s.bindGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(s.newToolsCommand())
	cmd.AddCommand(s.newRunCommand())
	cmd.AddCommand(s.newPromptCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func (s *runtimeState) bindGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&s.flags.ConfigPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&s.flags.Network, "network", "", "Hedera network (mainnet, testnet, previewnet)")
	flags.StringVar(&s.flags.AccountID, "account-id", "", "Connected account in shard.realm.num format")
	flags.StringVar(&s.flags.Mode, "mode", "", "Transaction dispatch mode (autonomous or returnBytes)")
	flags.StringVar(&s.flags.MirrorURL, "mirror-url", "", "Mirror node REST endpoint override")
	flags.StringSliceVar(&s.flags.Tools, "tools", nil, "Tool method allowlist")
	flags.BoolVarP(&s.flags.Verbose, "verbose", "v", false, "Enable debug logging")
}

// buildContext assembles the agent context from the merged configuration.
func (s *runtimeState) buildContext() (*agentkit.Context, error) {
	mode, err := s.config.AgentMode()
	if err != nil {
		return nil, err
	}

	kit := &agentkit.Context{
		AccountID:        s.config.AccountID,
		AccountPublicKey: s.config.PublicKey,
		Mode:             mode,
		Network:          s.config.Network,
	}

	if s.config.MirrorURL != "" {
		mirrorClient, err := mirror.NewClient(mirror.Config{
			Network: s.config.Network,
			BaseURL: s.config.MirrorURL,
		})
		if err != nil {
			return nil, err
		}
		kit.Mirror = mirrorClient
	}

	return kit, nil
}

// buildAPI constructs the tool API. The Hedera client is only built when a
// command actually submits transactions; inspection commands pass
// withClient=false and work offline.
func (s *runtimeState) buildAPI(withClient bool) (*agentkit.AgentAPI, error) {
	kit, err := s.buildContext()
	if err != nil {
		return nil, err
	}

	var client *hederaClient
	if withClient {
		client, err = s.buildClient(kit)
		if err != nil {
			return nil, err
		}
	}

	configuration := agentkit.Configuration{
		Tools:   s.config.Tools,
		Context: kit,
	}
	if client == nil {
		return agentkit.NewAgentAPI(nil, configuration, plugins.Core(), s.logger), nil
	}
	return agentkit.NewAgentAPI(client.client, configuration, plugins.Core(), s.logger), nil
}

func (s *runtimeState) newToolsCommand() *cobra.Command {
	root := &cobra.Command{Use: "tools", Short: "Inspect the registered agent tools"}

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List every registered tool method",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := s.buildAPI(false)
			if err != nil {
				return err
			}

			if asJSON {
				type toolEntry struct {
					Method      string `json:"method"`
					Name        string `json:"name"`
					Description string `json:"description"`
				}
				entries := make([]toolEntry, 0)
				for _, tool := range api.Tools() {
					entries = append(entries, toolEntry{
						Method:      tool.Method,
						Name:        tool.Name,
						Description: tool.Description,
					})
				}
				encoded, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			for _, tool := range api.Tools() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-42s %s\n", tool.Method, tool.Name)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	root.AddCommand(list)

	describe := &cobra.Command{
		Use:   "describe <method>",
		Short: "Show a tool's description and parameter schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := s.buildAPI(false)
			if err != nil {
				return err
			}

			tool, ok := api.Tool(args[0])
			if !ok {
				return fmt.Errorf("unknown tool method %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n%s\n", tool.Name, tool.Method, tool.Description)
			if tool.Parameters != nil {
				encoded, err := json.MarshalIndent(tool.Parameters, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nParameters:\n%s\n", string(encoded))
			}
			return nil
		},
	}
	root.AddCommand(describe)

	return root
}

func (s *runtimeState) newRunCommand() *cobra.Command {
	var params string
	var paramsFile string

	cmd := &cobra.Command{
		Use:   "run <method>",
		Short: "Execute one tool with JSON parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readParams(params, paramsFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			api, err := s.buildAPI(true)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			response, err := api.Run(ctx, args[0], raw)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), response.JSON())
			if response.Failed() {
				return fmt.Errorf("tool %s failed: %s", args[0], response.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&params, "params", "", "Tool parameters as a JSON object")
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "Read tool parameters from a file ('-' for stdin)")

	return cmd
}

func (s *runtimeState) newPromptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the agent context preamble for system prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := s.buildContext()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), agentkit.DescribeContext(kit))
			fmt.Fprintln(cmd.OutOrStdout(), agentkit.ParameterGuidance())
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// readParams resolves the parameter JSON from the flag, a file, or stdin.
func readParams(params, paramsFile string, stdin io.Reader) (json.RawMessage, error) {
	if params != "" && paramsFile != "" {
		return nil, fmt.Errorf("--params and --params-file are mutually exclusive")
	}
	if paramsFile == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read parameters from stdin: %w", err)
		}
		return json.RawMessage(raw), nil
	}
	if paramsFile != "" {
		raw, err := os.ReadFile(paramsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read parameters file: %w", err)
		}
		return json.RawMessage(raw), nil
	}
	if params == "" {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(params), nil
}
