package mocks

import (
	"context"
	"sync"

	"github.com/iho/pixdash/internal/domain"
)

// Notice is a notification captured by RecordingNotifier.
type Notice struct {
	Message  string
	Severity domain.Severity
}

// RecordingNotifier records every notification it receives.
type RecordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(message string, severity domain.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, Notice{Message: message, Severity: severity})
}

// Notices returns a copy of the recorded notifications.
func (n *RecordingNotifier) Notices() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.notices...)
}

// Count returns how many notifications had severity.
func (n *RecordingNotifier) Count(severity domain.Severity) int {
	count := 0
	for _, notice := range n.Notices() {
		if notice.Severity == severity {
			count++
		}
	}
	return count
}

// RecordingPresenter counts navigation signals.
type RecordingPresenter struct {
	mu           sync.Mutex
	LoginShown   int
	FormsCleared int
}

func NewRecordingPresenter() *RecordingPresenter {
	return &RecordingPresenter{}
}

func (p *RecordingPresenter) ShowLogin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.LoginShown++
}

func (p *RecordingPresenter) ClearTransferForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.FormsCleared++
}

// MemoryCredentialStore is an in-memory CredentialStore with overridable behavior.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	token string

	GetFunc    func(ctx context.Context) (string, error)
	SetFunc    func(ctx context.Context, token string) error
	RemoveFunc func(ctx context.Context) error
}

func NewMemoryCredentialStore(token string) *MemoryCredentialStore {
	return &MemoryCredentialStore{token: token}
}

func (m *MemoryCredentialStore) Get(ctx context.Context) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", domain.ErrNoStoredCredential
	}
	return m.token, nil
}

func (m *MemoryCredentialStore) Set(ctx context.Context, token string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryCredentialStore) Remove(ctx context.Context) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Stored returns the token currently held.
func (m *MemoryCredentialStore) Stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}
