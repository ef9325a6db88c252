// Package cmdexec는 외부 명령 실행을 테스트 가능하게 추상화한다.
// 프로덕션에서는 RealCommander, 테스트에서는 testutil의 FakeCommander를 주입한다.
package cmdexec

import (
	"context"
	"os"
	"os/exec"
)

// Commander는 외부 명령 실행을 추상화하는 interface다.
type Commander interface {
	// Run은 외부 명령을 실행하고 combined output을 반환한다.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunWithEnv는 현재 프로세스 환경 위에 env를 덮어쓴 채로 외부 명령을
	// 실행한다. 값이 빈 문자열인 키는 해당 변수를 비우는 용도로 쓰인다.
	RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error)
}

// RealCommander는 os/exec 기반의 실제 구현이다.
type RealCommander struct{}

var _ Commander = (*RealCommander)(nil)

// Run은 exec.CommandContext로 명령을 실행한다.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// RunWithEnv는 추가 환경변수와 함께 명령을 실행한다.
func (c *RealCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	return cmd.CombinedOutput()
}
