package chatting

import (
	"sync"
	"time"

	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/geminiclient"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
)

// Session é o estado local de uma conversa: o handle do oráculo e o
// transcript append-only exibido ao usuário. O transcript nunca é truncado
// nem resumido; crescimento ilimitado é aceito para uma sessão de UI.
type Session struct {
	ID string

	mu           sync.Mutex
	oracle       geminiclient.ChatSession
	messages     []domain.ChatMessage
	lastActivity time.Time
}

// Messages retorna uma cópia do transcript na ordem de inserção.
func (s *Session) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]domain.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}

func (s *Session) append(message domain.ChatMessage) {
	s.messages = append(s.messages, message)
	s.lastActivity = time.Now()
}

// sessionStore guarda as sessões ativas indexadas por ID.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*Session),
	}
}

func (st *sessionStore) put(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session
}

func (st *sessionStore) get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// removeIdle descarta sessões sem atividade há mais de maxIdle e retorna
// quantas foram removidas.
func (st *sessionStore) removeIdle(maxIdle time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0

	for id, session := range st.sessions {
		session.mu.Lock()
		idle := session.lastActivity.Before(cutoff)
		session.mu.Unlock()

		if idle {
			delete(st.sessions, id)
			removed++
		}
	}

	return removed
}

func (st *sessionStore) size() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
