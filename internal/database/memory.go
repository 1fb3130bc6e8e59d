package repository

import (
	"SupportSquad/entity"
	"sync"
)

// MemoryStore keeps conversation history in process memory. Records are
// created on first append, grow monotonically, are never evicted, and are
// lost on restart. The mutex guards against lost updates once the generator
// call involves blocking I/O.
type MemoryStore struct {
	mu            sync.Mutex
	conversations map[string][]entity.ConversationEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string][]entity.ConversationEntry),
	}
}

func (s *MemoryStore) AppendEntry(conversationID string, entry entity.ConversationEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conversationID] = append(s.conversations[conversationID], entry)
	return nil
}

// History returns a copy so readers never alias the stored slice.
func (s *MemoryStore) History(conversationID string) ([]entity.ConversationEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.conversations[conversationID]
	if len(stored) == 0 {
		return nil, nil
	}

	entries := make([]entity.ConversationEntry, len(stored))
	copy(entries, stored)
	return entries, nil
}
