package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/productscience/liquidstake/testutil/sample"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestWhitelist_AddAndRemove() {
	addr := sample.AccAddress()
	user := sdk.MustAccAddressFromBech32(addr)

	_, err := s.msgServer.AddToWhitelist(s.ctx, &types.MsgAddToWhitelist{Admin: s.fakes.Admin.String(), Address: addr})
	s.Require().NoError(err)
	s.Require().True(s.k.IsWhitelisted(s.ctx, user))

	_, err = s.msgServer.RemoveFromWhitelist(s.ctx, &types.MsgRemoveFromWhitelist{Admin: s.fakes.Admin.String(), Address: addr})
	s.Require().NoError(err)
	s.Require().False(s.k.IsWhitelisted(s.ctx, user))
}

func (s *KeeperTestSuite) TestWhitelist_RequiresAdmin() {
	outsider := sample.AccAddress()

	_, err := s.msgServer.AddToWhitelist(s.ctx, &types.MsgAddToWhitelist{Admin: outsider, Address: outsider})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().Contains(err.Error(), "Only admin can call add to whitelist")
	s.Require().False(s.k.IsWhitelisted(s.ctx, sdk.MustAccAddressFromBech32(outsider)))

	_, err = s.msgServer.SetWhite(s.ctx, &types.MsgSetWhite{Admin: outsider, White: false})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().True(s.k.GetWhitelistSettings(s.ctx).White)
}

func (s *KeeperTestSuite) TestWhitelist_SetWhite() {
	_, err := s.msgServer.SetWhite(s.ctx, &types.MsgSetWhite{Admin: s.fakes.Admin.String(), White: false, Track: true})
	s.Require().NoError(err)
	s.Require().Equal(types.WhitelistSettings{White: false, Track: true}, s.k.GetWhitelistSettings(s.ctx))
}

func (s *KeeperTestSuite) TestUpdateParams() {
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	newAdmin := sample.AccAddress()
	params := types.NewParams(newAdmin, s.fakes.Dev.String())
	params.TopValidators = 5

	_, err := s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: sample.AccAddress(), Params: params})
	s.Require().ErrorIs(err, types.ErrInvalidSigner)

	invalid := params
	invalid.DevFeeBps = types.BasisPoints + 1
	_, err = s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: authority, Params: invalid})
	s.Require().ErrorIs(err, types.ErrInvalidParams)

	_, err = s.msgServer.UpdateParams(s.ctx, &types.MsgUpdateParams{Authority: authority, Params: params})
	s.Require().NoError(err)
	s.Require().Equal(params, s.k.GetParams(s.ctx))

	// The previous admin lost its rights
	_, err = s.msgServer.AdvanceWindow(s.ctx, &types.MsgAdvanceWindow{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.AdvanceWindow(s.ctx, &types.MsgAdvanceWindow{Admin: newAdmin})
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestAdminGate_EmptyAdminRefusesEveryone() {
	params := s.k.GetParams(s.ctx)
	params.Admin = ""
	s.Require().NoError(s.k.SetParams(s.ctx, params))

	_, err := s.msgServer.AdvanceWindow(s.ctx, &types.MsgAdvanceWindow{Admin: ""})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}
