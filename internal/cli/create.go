package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hbjs97/prj/internal/project"
	"github.com/hbjs97/prj/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newCreateCmd() *cobra.Command {
	var withEnv bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "새 프로젝트 폴더를 생성한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreate(cmd, args[0], withEnv)
		},
	}
	cmd.Flags().BoolVar(&withEnv, "env", false, "가상환경(venv)도 함께 생성")
	return cmd
}

func (a *App) runCreate(cmd *cobra.Command, name string, withEnv bool) error {
	a.debugf(cmd, "명령: create, 이름: %s, env: %v", name, withEnv)

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	store := project.NewStore(cfg.Root)

	path, err := store.Create(name)
	if err != nil {
		if errors.Is(err, project.ErrExists) {
			fmt.Fprintf(cmd.ErrOrStderr(), "이동하려면: pj %s, 아니면 다른 이름을 선택하세요.\n", name)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "프로젝트 폴더 생성: %s\n", path)

	if withEnv {
		if err := a.provision(cmd.Context(), cmd.OutOrStdout(), cfg.Python, path, cfg.VenvDir); err != nil {
			// 부분 생성 상태를 남기지 않는다: 방금 만든 프로젝트도 제거
			_ = os.RemoveAll(path)
			fmt.Fprintf(cmd.ErrOrStderr(), "생성된 프로젝트 폴더를 되돌렸습니다: %s\n", path)
			return err
		}
	}
	return nil
}

// provision은 가상환경을 생성하고 진행 메시지를 출력한다.
func (a *App) provision(ctx context.Context, out io.Writer, python, path, venvDir string) error {
	fmt.Fprintln(out, "가상환경 생성 중...")
	if err := venv.Provision(ctx, a.Commander, python, path, venvDir); err != nil {
		return err
	}
	fmt.Fprintf(out, "가상환경 생성 완료: %s\n", filepath.Join(path, venvDir))
	fmt.Fprintf(out, "래퍼 없이 활성화하려면: source %s\n", filepath.Join(path, venv.HelperName))
	return nil
}
