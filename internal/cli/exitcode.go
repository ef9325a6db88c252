package cli

import (
	"errors"
)

// ExitCode는 prj의 종료 코드다. 에러 종류별로 구분된다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. 확인 프롬프트 거절도 여기에 포함된다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitInvalidName은 프로젝트 이름 규칙 위반이다.
	ExitInvalidName ExitCode = 2
	// ExitExists는 create 충돌이다.
	ExitExists ExitCode = 3
	// ExitNotFound는 delete/navigate 대상 부재다.
	ExitNotFound ExitCode = 4
	// ExitProvision은 가상환경 생성 실패다.
	ExitProvision ExitCode = 5
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 6
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrInvalidName):
		return ExitInvalidName
	case errors.Is(err, ErrExists):
		return ExitExists
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrProvision):
		return ExitProvision
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
