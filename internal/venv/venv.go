// Package venv는 프로젝트의 Python 가상환경 생성과 활성화 스크립트
// 탐색을 담당한다.
package venv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/prj/internal/cmdexec"
)

// ErrProvision은 가상환경 생성 실패 sentinel error다.
var ErrProvision = errors.New("가상환경 생성 실패")

// HelperName은 프로젝트 루트에 생성되는 활성화 헬퍼 스크립트 이름이다.
// 래퍼 없이 쓰는 사용자를 위한 것으로, venv의 activate를 source한다.
const HelperName = "activate.sh"

// Provision은 <projectPath>/<venvDir>에 가상환경을 생성하고 프로젝트
// 루트에 activate.sh 헬퍼를 만든다. 실패하면 만들다 만 디렉토리와
// 헬퍼를 제거해 부분 생성 상태를 남기지 않는다.
func Provision(ctx context.Context, cmd cmdexec.Commander, python, projectPath, venvDir string) error {
	target := filepath.Join(projectPath, venvDir)

	// 이미 활성화된 venv 안에서 실행돼도 중첩 간섭이 없도록 비운다
	env := map[string]string{"VIRTUAL_ENV": ""}
	out, err := cmd.RunWithEnv(ctx, env, python, "-m", "venv", target)
	if err != nil {
		_ = os.RemoveAll(target)
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("venv.Provision: %s: %w", msg, ErrProvision)
	}

	if err := writeActivateHelper(projectPath, target); err != nil {
		_ = os.RemoveAll(target)
		_ = os.Remove(filepath.Join(projectPath, HelperName))
		return fmt.Errorf("venv.Provision: 헬퍼 생성 실패: %v: %w", err, ErrProvision)
	}
	return nil
}

// writeActivateHelper는 venv의 activate를 source하는 실행 가능한
// 스크립트를 프로젝트 루트에 쓴다.
func writeActivateHelper(projectPath, venvPath string) error {
	script := fmt.Sprintf("#!/bin/bash\nsource %s\n", filepath.Join(venvPath, "bin", "activate"))
	return os.WriteFile(filepath.Join(projectPath, HelperName), []byte(script), 0755)
}

// Discover는 프로젝트에서 활성화 스크립트를 찾는다. 탐색 순서는
// 결정적이다: <p>/<venvDir>/bin/activate가 있으면 그것, 없으면 직계
// 하위 디렉토리를 사전순으로 돌며 <p>/<sub>/<venvDir>/bin/activate를
// 찾는다. 중첩은 한 단계까지만 보고, 숨김 디렉토리는 건너뛴다.
func Discover(projectPath, venvDir string) (string, bool) {
	if script, ok := activationScript(filepath.Join(projectPath, venvDir)); ok {
		return script, true
	}
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return "", false
	}
	for _, e := range entries { // os.ReadDir는 이름순 정렬을 보장한다
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || e.Name() == venvDir {
			continue
		}
		if script, ok := activationScript(filepath.Join(projectPath, e.Name(), venvDir)); ok {
			return script, true
		}
	}
	return "", false
}

func activationScript(venvPath string) (string, bool) {
	script := filepath.Join(venvPath, "bin", "activate")
	info, err := os.Stat(script)
	if err != nil || info.IsDir() {
		return "", false
	}
	return script, true
}
