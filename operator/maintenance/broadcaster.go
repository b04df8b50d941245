package maintenance

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/operator/logging"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// Broadcaster submits a maintenance message to the chain.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg sdk.Msg) error
}

// MsgServerBroadcaster delivers messages straight to the module's message server.
// The context handed to Broadcast must carry an sdk.Context.
type MsgServerBroadcaster struct {
	msgServer types.MsgServer
}

func NewMsgServerBroadcaster(msgServer types.MsgServer) MsgServerBroadcaster {
	return MsgServerBroadcaster{msgServer: msgServer}
}

func (b MsgServerBroadcaster) Broadcast(ctx context.Context, msg sdk.Msg) error {
	var err error
	switch m := msg.(type) {
	case *types.MsgClaimAndStake:
		_, err = b.msgServer.ClaimAndStake(ctx, m)
	case *types.MsgAdvanceWindow:
		_, err = b.msgServer.AdvanceWindow(ctx, m)
	case *types.MsgReDelegate:
		_, err = b.msgServer.ReDelegate(ctx, m)
	default:
		err = fmt.Errorf("unsupported maintenance message %T", msg)
	}
	return err
}

// DryRunBroadcaster logs the messages it would submit.
type DryRunBroadcaster struct{}

func (DryRunBroadcaster) Broadcast(_ context.Context, msg sdk.Msg) error {
	bz, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	logging.Info("dry run broadcast", logging.Maintenance, "type", fmt.Sprintf("%T", msg), "msg", string(bz))
	return nil
}
