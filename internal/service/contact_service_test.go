package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

func TestSubmitContactDefaultsAndSanitizes(t *testing.T) {
	svc := NewContactService(newTestStore(t))

	msg, err := svc.Submit(context.Background(), SubmitContactInput{
		Name:    "  Alice <script>alert(1)</script>  ",
		Email:   "alice@example.com",
		Message: "Hello <b>there</b>",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Alice", msg.Name)
	assert.Equal(t, "Hello there", msg.Message)
	assert.Equal(t, "No Subject", msg.Subject)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestSubmitContactKeepsExplicitSubject(t *testing.T) {
	svc := NewContactService(newTestStore(t))

	msg, err := svc.Submit(context.Background(), SubmitContactInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Question about DBMS notes",
		Message: "Where is unit 3?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Question about DBMS notes", msg.Subject)
}

func TestListContactsNewestFirst(t *testing.T) {
	svc := NewContactService(newTestStore(t))
	ctx := context.Background()

	first, err := svc.Submit(ctx, SubmitContactInput{Name: "A", Email: "a@x.com", Message: "first"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Submit(ctx, SubmitContactInput{Name: "B", Email: "b@x.com", Message: "second"})
	require.NoError(t, err)

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
	assert.Equal(t, first.ID, messages[1].ID)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	svc := NewContactService(newTestStore(t))
	ctx := context.Background()

	msg, err := svc.Submit(ctx, SubmitContactInput{Name: "A", Email: "a@x.com", Message: "m"})
	require.NoError(t, err)

	read, err := svc.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	again, err := svc.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, again.IsRead)

	_, err = svc.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteContact(t *testing.T) {
	svc := NewContactService(newTestStore(t))
	ctx := context.Background()

	msg, err := svc.Submit(ctx, SubmitContactInput{Name: "A", Email: "a@x.com", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, msg.ID))
	assert.ErrorIs(t, svc.Delete(ctx, msg.ID), apperror.ErrNotFound)

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
