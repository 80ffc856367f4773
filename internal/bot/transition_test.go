package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textCard(text string) lessonCard {
	return lessonCard{text: text, keyboard: lessonKeyboard("eng", false)}
}

func audioCard(text string) lessonCard {
	return lessonCard{text: text, audio: []byte{1, 2, 3}, audioTitle: "clip", keyboard: lessonKeyboard("eng", false)}
}

func TestTransitionFreshSendWhenNoLiveMessage(t *testing.T) {
	b, _, tp := newTestBot(t)

	rendered, err := b.transition(1, renderedMessage{}, textCard("first"), "greetings", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, rendered.id)
	assert.False(t, rendered.hasAudio)
	assert.Equal(t, []string{"send"}, tp.callLog())
}

func TestTransitionTextToTextPrefersEdit(t *testing.T) {
	b, _, tp := newTestBot(t)

	prev, err := b.sendCard(1, textCard("old"))
	require.NoError(t, err)

	rendered, err := b.transition(1, prev, textCard("new"), "greetings", 1, 3)
	require.NoError(t, err)

	// same message id, updated in place via skeleton then real content
	assert.Equal(t, prev.id, rendered.id)
	assert.Equal(t, []string{"send", "edit", "edit"}, tp.callLog())
	assert.Equal(t, "new", tp.textOf(prev.id))
	assert.Empty(t, tp.deletedIDs())
}

func TestTransitionEditFailureFallsBackToReplace(t *testing.T) {
	b, _, tp := newTestBot(t)

	prev, err := b.sendCard(1, textCard("old"))
	require.NoError(t, err)

	tp.editErr = errors.New("message can't be edited")

	rendered, err := b.transition(1, prev, textCard("new"), "greetings", 1, 3)
	require.NoError(t, err)

	require.NotEqual(t, prev.id, rendered.id)
	assert.Equal(t, "new", tp.textOf(rendered.id))

	// new message sent before old one is removed
	log := tp.callLog()
	require.GreaterOrEqual(t, len(log), 4)
	assert.Equal(t, []string{"send", "edit", "edit", "send"}, log[:4])

	require.Eventually(t, func() bool {
		return len(tp.deletedIDs()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{prev.id}, tp.deletedIDs())
}

func TestTransitionOutgoingAudioAlwaysReplaces(t *testing.T) {
	b, _, tp := newTestBot(t)

	prev, err := b.sendCard(1, audioCard("old"))
	require.NoError(t, err)
	require.True(t, prev.hasAudio)

	rendered, err := b.transition(1, prev, textCard("new"), "greetings", 1, 3)
	require.NoError(t, err)

	require.NotEqual(t, prev.id, rendered.id)
	assert.False(t, rendered.hasAudio)

	// no edit attempt for an audio message
	log := tp.callLog()
	assert.NotContains(t, log, "edit")

	require.Eventually(t, func() bool {
		return len(tp.deletedIDs()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestTransitionIncomingAudioAlwaysReplaces(t *testing.T) {
	b, _, tp := newTestBot(t)

	prev, err := b.sendCard(1, textCard("old"))
	require.NoError(t, err)

	rendered, err := b.transition(1, prev, audioCard("new"), "greetings", 1, 3)
	require.NoError(t, err)

	require.NotEqual(t, prev.id, rendered.id)
	assert.True(t, rendered.hasAudio)
	assert.NotContains(t, tp.callLog(), "edit")
}

func TestTransitionDeleteFailureIsTolerated(t *testing.T) {
	b, _, tp := newTestBot(t)

	prev, err := b.sendCard(1, audioCard("old"))
	require.NoError(t, err)

	tp.deleteErr = errors.New("message to delete not found")

	rendered, err := b.transition(1, prev, textCard("new"), "greetings", 1, 3)
	require.NoError(t, err)
	assert.NotEqual(t, prev.id, rendered.id)

	require.Eventually(t, func() bool {
		for _, c := range tp.callLog() {
			if c == "delete" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, tp.deletedIDs())
}

func TestTransitionSendFailureKeepsOldMessage(t *testing.T) {
	b, _, tp := newTestBot(t)

	prev, err := b.sendCard(1, audioCard("old"))
	require.NoError(t, err)

	tp.sendErr = errors.New("network down")

	rendered, err := b.transition(1, prev, textCard("new"), "greetings", 1, 3)
	require.Error(t, err)
	// tracked message unchanged, nothing deleted
	assert.Equal(t, prev, rendered)
	assert.Empty(t, tp.deletedIDs())
}
