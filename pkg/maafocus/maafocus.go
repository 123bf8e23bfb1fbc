package maafocus

import (
	"errors"

	"github.com/MaaXYZ/maa-framework-go/v4"
)

const nodeName = "_OW_AGENT_FOCUS_"

// ErrNilContext indicates the provided context is nil.
var ErrNilContext = errors.New("context is nil")

// NodeActionStarting surfaces a message on the UI through a transient focus
// node. content is the text to display; it may contain MXU-style HTML.
func NodeActionStarting(ctx *maa.Context, content string) error {
	if ctx == nil {
		return ErrNilContext
	}

	pp := maa.NewPipeline()
	pp.AddNode(maa.NewNode(nodeName).
		SetFocus(map[string]any{
			maa.EventNodeAction.Starting(): content,
		}).
		SetPreDelay(0).
		SetPostDelay(0))
	_, err := ctx.RunTask(nodeName, pp)
	return err
}
