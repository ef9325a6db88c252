package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/prj/internal/config"
	"github.com/hbjs97/prj/internal/project"
	"github.com/hbjs97/prj/internal/protocol"
	"github.com/hbjs97/prj/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newNavigateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <name>",
		Short: "프로젝트 디렉토리로 이동한다 (home은 Root로 이동)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNavigate(cmd, args[0])
		},
	}
}

// runNavigate는 타깃을 해석해 directive를 출력한다. 성공 경로에서만
// directive가 나가고, NAVIGATE_TO가 항상 ACTIVATE_VENV보다 먼저다.
func (a *App) runNavigate(cmd *cobra.Command, target string) error {
	a.debugf(cmd, "명령: navigate, 타깃: %s", target)

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	store := project.NewStore(cfg.Root)

	var path string
	if target == project.HomeTarget {
		if err := store.EnsureRoot(); err != nil {
			return err
		}
		path = store.Root()
	} else {
		path, err = store.Resolve(target)
		if errors.Is(err, project.ErrNotFound) {
			path, err = a.createOnDemand(cmd, store, cfg, target)
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "이동이 취소되었습니다.")
				return nil
			}
		} else if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	protocol.Navigate(out, path)
	if script, ok := venv.Discover(path, cfg.VenvDir); ok {
		protocol.Activate(out, script)
	}
	return nil
}

// createOnDemand는 없는 타깃에 대한 생성 플로우다. 사용자가 거절하면
// ("", nil)을 반환하고 호출자가 정상 취소로 처리한다.
func (a *App) createOnDemand(cmd *cobra.Command, store *project.Store, cfg *config.Config, name string) (string, error) {
	confirmed, err := a.Prompter.Confirm(
		fmt.Sprintf("프로젝트 %q가 없습니다. 새로 생성할까요?", name))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: 확인 입력 실패: %v\n", err)
		return "", nil
	}
	if !confirmed {
		return "", nil
	}

	// 확인 스트림 실패는 어느 질문에서든 플로우 전체의 암묵적 거절이다
	withEnv, err := a.Prompter.Confirm("가상환경(venv)도 함께 생성할까요?")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: 확인 입력 실패: %v\n", err)
		return "", nil
	}

	path, err := store.Create(name)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "프로젝트 폴더 생성: %s\n", path)

	if withEnv {
		if err := a.provision(cmd.Context(), cmd.OutOrStdout(), cfg.Python, path, cfg.VenvDir); err != nil {
			// 부분 생성 상태를 남기지 않는다: 방금 만든 프로젝트도 제거
			_ = os.RemoveAll(path)
			fmt.Fprintf(cmd.ErrOrStderr(), "생성된 프로젝트 폴더를 되돌렸습니다: %s\n", path)
			return "", err
		}
	}
	return path, nil
}
