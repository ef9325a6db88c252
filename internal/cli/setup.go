package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/prj/internal/shell"
	"github.com/spf13/cobra"
)

// setupTemplate는 prj setup이 생성하는 기본 config.toml 내용이다.
const setupTemplate = `# prj configuration file

version = 1
# 프로젝트 Root 디렉토리. PRJ_ROOT 환경변수로도 덮어쓸 수 있다.
# root = "~/Documents/Projects"
# 가상환경 생성에 쓸 python 바이너리
# python = "python3"
# 가상환경 디렉토리 이름
# venv_dir = "venv"
`

func (a *App) newSetupCmd() *cobra.Command {
	var shellType string
	var rcPath string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일과 셸 hook을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, shellType, rcPath)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (비우면 자동 감지)")
	cmd.Flags().StringVar(&rcPath, "rc", "", "RC 파일 경로 (비우면 셸별 기본값)")
	return cmd
}

func (a *App) runSetup(cmd *cobra.Command, shellType, rcPath string) error {
	out := cmd.OutOrStdout()

	// 설정 파일이 없으면 주석 처리된 기본값 템플릿을 깔아 둔다
	if _, err := os.Stat(a.CfgPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(a.CfgPath), 0700); err != nil {
			return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
		}
		if err := os.WriteFile(a.CfgPath, []byte(setupTemplate), 0600); err != nil {
			return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
		}
		fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	}

	if shellType == "" {
		shellType = shell.Detect()
	}
	if rcPath == "" {
		rcPath = shell.RCPath(shellType)
	}
	if rcPath == "" {
		return fmt.Errorf("cli.setup: 지원하지 않는 셸: %s", shellType)
	}

	if err := shell.InstallHook(shellType, rcPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "셸 hook이 설치되었습니다: %s\n", rcPath)
	fmt.Fprintln(out, "새 셸을 열거나 rc 파일을 다시 source하면 pj 명령을 쓸 수 있습니다.")
	return nil
}
