// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRole is the author of a chat message.
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Valid reports whether the role is one the completion API accepts.
func (r ChatRole) Valid() bool {
	switch r {
	case ChatRoleSystem, ChatRoleUser, ChatRoleAssistant:
		return true
	default:
		return false
	}
}

// ChatMessage is one turn of the conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest is the body of POST /api/chat. Messages are ordered oldest
// first and already include the system prompt built by the site.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatReply is the body returned by POST /api/chat on success.
type ChatReply struct {
	Content string `json:"content"`
}

// ChatCompletionParams tunes a single completion call.
type ChatCompletionParams struct {
	Model       string
	Temperature float64
	MaxTokens   int
}
