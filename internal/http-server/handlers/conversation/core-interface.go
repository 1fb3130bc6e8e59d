package conversation

import "SupportSquad/entity"

type Core interface {
	History(conversationID string) ([]entity.ConversationEntry, error)
}
