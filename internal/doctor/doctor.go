package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/prj/internal/cmdexec"
	"github.com/hbjs97/prj/internal/shell"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckRoot는 프로젝트 Root 디렉토리 상태를 확인한다.
// 없는 것은 경고다 (첫 create/navigate에서 생성된다). 디렉토리가
// 아니거나 쓸 수 없으면 실패다.
func CheckRoot(root string) DiagResult {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return DiagResult{
			Name:    "root",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음 — 첫 명령 실행 시 생성됩니다", root),
		}
	}
	if err != nil {
		return DiagResult{
			Name:    "root",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 확인 실패: %v", root, err),
		}
	}
	if !info.IsDir() {
		return DiagResult{
			Name:    "root",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s가 디렉토리가 아닙니다", root),
			Fix:     "config.toml의 root 또는 PRJ_ROOT를 수정하세요",
		}
	}

	probe := filepath.Join(root, ".prj-doctor-probe")
	f, err := os.Create(probe)
	if err != nil {
		return DiagResult{
			Name:    "root",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s에 쓸 수 없습니다", root),
			Fix:     "디렉토리 권한을 확인하세요",
		}
	}
	f.Close()
	os.Remove(probe)

	return DiagResult{Name: "root", Status: StatusOK, Message: root}
}

// CheckPython은 가상환경 생성에 쓸 python 바이너리를 확인한다.
func CheckPython(ctx context.Context, cmd cmdexec.Commander, python string) DiagResult {
	out, err := cmd.Run(ctx, python, "--version")
	if err != nil {
		return DiagResult{
			Name:    "python",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", python),
			Fix:     "python을 설치하거나 config.toml의 python을 수정하세요",
		}
	}
	return DiagResult{
		Name:    "python",
		Status:  StatusOK,
		Message: strings.TrimSpace(string(out)),
	}
}

// CheckHook은 셸 rc 파일에 pj 래퍼가 설치되어 있는지 확인한다.
func CheckHook(shellType, rcPath string) DiagResult {
	if rcPath == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("지원하지 않는 셸: %s", shellType),
		}
	}
	if !shell.Installed(rcPath) {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s에 셸 hook 미설치 — cd/활성화가 동작하지 않습니다", rcPath),
			Fix:     "prj setup 실행",
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s에 설치됨", rcPath),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, root, python string) []DiagResult {
	shellType := shell.Detect()
	return []DiagResult{
		CheckRoot(root),
		CheckPython(ctx, cmd, python),
		CheckHook(shellType, shell.RCPath(shellType)),
	}
}
