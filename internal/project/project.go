// Package project는 Root 디렉토리 아래의 프로젝트 디렉토리들을 관리한다.
// 프로젝트는 <root>/<name> 디렉토리가 존재하면 존재하는 것이고, 별도의
// 인덱스나 메타데이터는 없다. 모든 프로젝트는 Root의 직계 자식이다.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// HomeTarget은 Root 자체로의 이동을 뜻하는 예약 타깃이다.
const HomeTarget = "home"

// nameRegex는 프로젝트 이름 규칙이다. 경로 구분자, 상위 경로 참조,
// 개행이 들어올 수 없는 형태라서 directive 줄 오염도 함께 차단된다.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

var (
	// ErrInvalidName은 이름 규칙 위반 sentinel error다.
	ErrInvalidName = errors.New("올바르지 않은 프로젝트 이름")
	// ErrExists는 create 충돌 sentinel error다.
	ErrExists = errors.New("프로젝트가 이미 존재합니다")
	// ErrNotFound는 delete/navigate 대상 부재 sentinel error다.
	ErrNotFound = errors.New("프로젝트를 찾을 수 없습니다")
)

// ValidateName은 프로젝트 이름 규칙을 검사한다.
// 영문/숫자로 시작하고 영문/숫자/_/-만 허용한다. "home"은 예약어다.
func ValidateName(name string) error {
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("project.ValidateName: %q: %w", name, ErrInvalidName)
	}
	if name == HomeTarget {
		return fmt.Errorf("project.ValidateName: %q는 예약된 이름입니다: %w", name, ErrInvalidName)
	}
	return nil
}

// Store는 하나의 Root 디렉토리에 대한 프로젝트 CRUD다.
type Store struct {
	root string
}

// NewStore는 주어진 Root 경로에 대한 Store를 생성한다.
// root는 절대 경로여야 한다 (config가 보장한다).
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root는 프로젝트 Root 디렉토리 경로를 반환한다.
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot는 Root 디렉토리가 없으면 생성한다.
func (s *Store) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("project.EnsureRoot: %w", err)
	}
	return nil
}

// Path는 프로젝트의 절대 경로를 반환한다. 이름 검증은 하지 않는다.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name)
}

// Create는 새 프로젝트 디렉토리를 생성하고 절대 경로를 반환한다.
// 이미 존재하면 ErrExists를 반환하고 아무것도 변경하지 않는다.
func (s *Store) Create(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if err := s.EnsureRoot(); err != nil {
		return "", err
	}
	path := s.Path(name)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project.Create: %s: %w", path, ErrExists)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		return "", fmt.Errorf("project.Create: %w", err)
	}
	return path, nil
}

// Resolve는 이름을 기존 프로젝트의 절대 경로로 변환한다.
// 디렉토리가 없으면 ErrNotFound를 반환한다.
func (s *Store) Resolve(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path := s.Path(name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("project.Resolve: %q: %w", name, ErrNotFound)
	}
	return path, nil
}

// Remove는 프로젝트 디렉토리를 재귀적으로 삭제한다.
func (s *Store) Remove(name string) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("project.Remove: %w", err)
	}
	return nil
}

// List는 프로젝트 이름들을 사전순으로 반환한다.
// 숨김 디렉토리와 일반 파일은 제외한다. Root가 없으면 빈 목록이다.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name()) // os.ReadDir는 이름순 정렬을 보장한다
	}
	return names, nil
}
