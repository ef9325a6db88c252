package cli

import (
	"github.com/hbjs97/prj/internal/config"
	"github.com/hbjs97/prj/internal/project"
	"github.com/hbjs97/prj/internal/venv"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidName은 프로젝트 이름 규칙 위반 sentinel error다.
	ErrInvalidName = project.ErrInvalidName
	// ErrExists는 create 충돌 sentinel error다.
	ErrExists = project.ErrExists
	// ErrNotFound는 delete/navigate 대상 부재 sentinel error다.
	ErrNotFound = project.ErrNotFound
	// ErrProvision은 가상환경 생성 실패 sentinel error다.
	ErrProvision = venv.ErrProvision
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
