package cli

import (
	"fmt"

	"github.com/hbjs97/prj/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸에 source할 pj 래퍼 함수를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet := shell.WrapperSnippet(shellType)
			if snippet == "" {
				return fmt.Errorf("cli.hook: 지원하지 않는 셸: %s", shellType)
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	return cmd
}
