package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riskcraft/riskcraft/pkg/register"
)

func init() {
	RootCmd.AddCommand(RegisterCmd)
}

var RegisterCmd = &cobra.Command{
	Use:          "register",
	Short:        "print the risk register and risk matrix from a config file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Register == nil {
			return errors.New("config file has no register section")
		}

		if len(cfg.Register.Risks) > 0 {
			reg := register.New()
			for _, risk := range cfg.Register.Risks {
				if err := reg.Add(risk); err != nil {
					return err
				}
			}
			reg.WriteReport(os.Stdout)
		}

		if len(cfg.Register.Matrix) > 0 {
			scored, err := register.BuildMatrix(cfg.Register.Matrix)
			if err != nil {
				return err
			}
			register.WriteMatrixReport(os.Stdout, scored)
		}
		return nil
	},
}
