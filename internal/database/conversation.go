package repository

import (
	"SupportSquad/entity"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type conversationDoc struct {
	ConversationID string `bson:"conversation_id"`
	EntryID        string `bson:"entry_id"`
	UserMessage    string `bson:"user_message"`
	AiResponse     string `bson:"ai_response"`
	Timestamp      string `bson:"timestamp"`
}

// AppendEntry inserts one exchange into the conversation's history.
func (m *MongoDB) AppendEntry(conversationID string, entry entity.ConversationEntry) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(conversationsCollection)

	doc := conversationDoc{
		ConversationID: conversationID,
		EntryID:        entry.ID,
		UserMessage:    entry.UserMessage,
		AiResponse:     entry.AiResponse,
		Timestamp:      entry.Timestamp,
	}
	_, err = collection.InsertOne(m.ctx, doc)
	if err != nil {
		return fmt.Errorf("mongodb insert conversation entry: %w", err)
	}

	return nil
}

// History returns the conversation's entries in append order. Unknown ids
// yield an empty slice.
func (m *MongoDB) History(conversationID string) ([]entity.ConversationEntry, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(conversationsCollection)

	filter := bson.D{{Key: "conversation_id", Value: conversationID}}
	// Insertion order: ObjectIDs are monotonic enough for a single writer.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := collection.Find(m.ctx, filter, opts)
	if err != nil {
		return nil, m.findError(err)
	}
	defer cursor.Close(m.ctx)

	var entries []entity.ConversationEntry
	for cursor.Next(m.ctx) {
		var doc conversationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongodb decode conversation entry: %w", err)
		}
		entries = append(entries, entity.ConversationEntry{
			ID:          doc.EntryID,
			UserMessage: doc.UserMessage,
			AiResponse:  doc.AiResponse,
			Timestamp:   doc.Timestamp,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongodb cursor error: %w", err)
	}

	return entries, nil
}
