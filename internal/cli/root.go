package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/prj/internal/cmdexec"
	"github.com/hbjs97/prj/internal/config"
	"github.com/hbjs97/prj/internal/prompt"
	"github.com/spf13/cobra"
)

// App은 prj CLI의 의존성 묶음이다. 테스트에서는 FakeCommander와
// FakePrompter를 주입한다.
type App struct {
	CfgPath   string
	Commander cmdexec.Commander
	Prompter  prompt.Prompter
	Verbose   bool
}

// NewApp은 프로덕션 의존성으로 App을 생성한다.
func NewApp() *App {
	return &App{
		CfgPath:   filepath.Join(homeDir(), ".config", "prj", "config.toml"),
		Commander: &cmdexec.RealCommander{},
		Prompter:  &prompt.HuhPrompter{},
	}
}

// NewRootCmd는 prj CLI의 루트 명령을 생성한다.
// 서브커맨드 없이 호출되면 사용법을 보여주고 에러를 반환한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "prj",
		Short:        "프로젝트 디렉토리 매니저",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("cli: 명령이 지정되지 않았습니다")
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "상세 출력")

	cmd.AddCommand(
		a.newCreateCmd(),
		a.newDeleteCmd(),
		a.newListCmd(),
		a.newNavigateCmd(),
		a.newHookCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// loadConfig는 설정을 로드한다. 파일이 없으면 기본값이 쓰인다.
func (a *App) loadConfig() (*config.Config, error) {
	return config.Load(a.CfgPath)
}

// debugf는 verbose 모드에서만 stderr로 진단 메시지를 출력한다.
func (a *App) debugf(cmd *cobra.Command, format string, args ...any) {
	if a.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "prj: "+format+"\n", args...)
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
