package cli

import (
	"fmt"

	"github.com/hbjs97/prj/internal/project"
	"github.com/spf13/cobra"
)

func (a *App) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "프로젝트 폴더를 확인 후 삭제한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(cmd, args[0])
		},
	}
}

func (a *App) runDelete(cmd *cobra.Command, name string) error {
	a.debugf(cmd, "명령: delete, 이름: %s", name)

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	store := project.NewStore(cfg.Root)

	// 존재 확인을 먼저 해서 없는 프로젝트에 대해 프롬프트를 띄우지 않는다
	if _, err := store.Resolve(name); err != nil {
		return err
	}

	confirmed, err := a.Prompter.Confirm(
		fmt.Sprintf("프로젝트 %q를 정말 삭제하시겠습니까? 되돌릴 수 없습니다.", name))
	if err != nil {
		// 확인 스트림 실패는 암묵적 거절이다 — 조용히 진행하지 않는다
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: 확인 입력 실패: %v\n", err)
		confirmed = false
	}
	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "삭제가 취소되었습니다.")
		return nil
	}

	if err := store.Remove(name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "프로젝트 %q가 삭제되었습니다.\n", name)
	return nil
}
