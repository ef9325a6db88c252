package cli

import (
	"fmt"

	"github.com/hbjs97/prj/internal/project"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "모든 프로젝트를 나열한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	a.debugf(cmd, "명령: list")

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	names, err := project.NewStore(cfg.Root).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "등록된 프로젝트가 없습니다.")
		return nil
	}

	fmt.Fprintln(out, "프로젝트 목록:")
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	return nil
}
