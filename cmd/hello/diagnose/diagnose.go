package diagnose

import (
	"context"
	"fmt"

	"github.com/flarebyte/hello-world-cli/internal/contract"
	"github.com/flarebyte/hello-world-cli/internal/diag"
	"github.com/spf13/cobra"
)

var (
	flagCheck   string
	flagFormat  string
	flagOut     string
	flagPretty  bool
	flagWorkers int
)

// Cmd implements `hello diagnose`: the binary audits its own output contract
// and emits a deterministic report.
var Cmd = &cobra.Command{
	Use:           "diagnose",
	Short:         "Run the self-check sequence and emit a report",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := assembleReport(cmd.Context())
		if err != nil {
			return err
		}
		if err := renderReport(rep); err != nil {
			return err
		}
		return evaluateDiagnoseExit(rep)
	},
}

func assembleReport(ctx context.Context) (*diag.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	deps := diag.Deps{Workers: flagWorkers}
	if flagCheck != "" {
		return diag.RunOne(ctx, flagCheck, deps)
	}
	return diag.RunAll(ctx, deps)
}

// renderReport validates the report against the contract schema, then writes
// it in the requested encoding. A non-conforming report is never emitted.
func renderReport(rep *diag.Report) error {
	jsonData, err := diag.EncodeJSON(rep, false)
	if err != nil {
		return err
	}
	if err := contract.Validate(jsonData); err != nil {
		return diagnoseExitError{code: exitCodeExecErr, msg: err.Error()}
	}

	var data []byte
	switch flagFormat {
	case "", "json":
		data = jsonData
		if flagPretty {
			data, err = diag.EncodeJSON(rep, true)
			if err != nil {
				return err
			}
		}
	case "yaml":
		data, err = diag.EncodeYAML(rep)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format: %s", flagFormat)
	}
	return diag.WriteTo(flagOut, data)
}

func init() {
	Cmd.Flags().StringVar(&flagCheck, "check", "", "Run a single named check")
	Cmd.Flags().StringVar(&flagFormat, "format", "json", "Report format: json|yaml")
	Cmd.Flags().StringVar(&flagOut, "out", "-", "Output path (- = stdout)")
	Cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Pretty JSON (json format only)")
	Cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Worker count for isolation checks (0 = NumCPU)")
}
