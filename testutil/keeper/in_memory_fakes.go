package keeper

// Fakes for the collaborator keepers, keeping balances in memory so that
// tests can follow real token movements end to end.
import (
	"context"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// InMemoryBankKeeper tracks account balances and total supply.
type InMemoryBankKeeper struct {
	balances map[string]sdk.Coins
	supply   map[string]math.Int
	mu       sync.RWMutex
}

func NewInMemoryBankKeeper() *InMemoryBankKeeper {
	return &InMemoryBankKeeper{
		balances: make(map[string]sdk.Coins),
		supply:   make(map[string]math.Int),
	}
}

func (b *InMemoryBankKeeper) transfer(from, to sdk.AccAddress, amt sdk.Coins) error {
	balance := b.balances[from.String()]
	if !balance.IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("spendable balance %s is smaller than %s", balance, amt)
	}
	b.balances[from.String()] = balance.Sub(amt...)
	b.balances[to.String()] = b.balances[to.String()].Add(amt...)
	return nil
}

func (b *InMemoryBankKeeper) mint(to sdk.AccAddress, amt sdk.Coins) {
	b.balances[to.String()] = b.balances[to.String()].Add(amt...)
	for _, coin := range amt {
		b.supply[coin.Denom] = b.Supply(coin.Denom).Add(coin.Amount)
	}
}

// Supply returns the supply of denom. Callers must not hold the lock.
func (b *InMemoryBankKeeper) Supply(denom string) math.Int {
	if s, ok := b.supply[denom]; ok {
		return s
	}
	return math.ZeroInt()
}

func (b *InMemoryBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transfer(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *InMemoryBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transfer(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *InMemoryBankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mint(authtypes.NewModuleAddress(moduleName), amt)
	return nil
}

func (b *InMemoryBankKeeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	addr := authtypes.NewModuleAddress(moduleName)
	balance := b.balances[addr.String()]
	if !balance.IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("cannot burn %s from %s", amt, balance)
	}
	b.balances[addr.String()] = balance.Sub(amt...)
	for _, coin := range amt {
		b.supply[coin.Denom] = b.Supply(coin.Denom).Sub(coin.Amount)
	}
	return nil
}

func (b *InMemoryBankKeeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sdk.NewCoin(denom, b.Supply(denom))
}

// Fund credits newly minted coins to an account.
func (b *InMemoryBankKeeper) Fund(addr sdk.AccAddress, amt sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mint(addr, amt)
}

// Balance returns the balance of addr in denom.
func (b *InMemoryBankKeeper) Balance(addr sdk.AccAddress, denom string) math.Int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr.String()].AmountOf(denom)
}

// InMemoryStakingKeeper bonds tokens into a pool account. Undelegated tokens are
// returned to the delegator straight away; the completion time is still reported.
// Redelegations follow the x/staking rule that stake still arriving at a validator
// cannot be redelegated again before the incoming redelegation completes.
type InMemoryStakingKeeper struct {
	bank          *InMemoryBankKeeper
	denom         string
	unbondingTime time.Duration
	delegations   map[string]math.Int
	receiving     map[string]time.Time
	mu            sync.RWMutex
}

var BondedPoolAddress = authtypes.NewModuleAddress("bonded_tokens_pool")

func NewInMemoryStakingKeeper(bank *InMemoryBankKeeper, denom string, unbondingTime time.Duration) *InMemoryStakingKeeper {
	return &InMemoryStakingKeeper{
		bank:          bank,
		denom:         denom,
		unbondingTime: unbondingTime,
		delegations:   make(map[string]math.Int),
		receiving:     make(map[string]time.Time),
	}
}

func (s *InMemoryStakingKeeper) key(delegator sdk.AccAddress, validator sdk.ValAddress) string {
	return fmt.Sprintf("%s/%s", delegator, validator)
}

func (s *InMemoryStakingKeeper) get(key string) math.Int {
	if amount, ok := s.delegations[key]; ok {
		return amount
	}
	return math.ZeroInt()
}

func (s *InMemoryStakingKeeper) Delegate(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress, amount math.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bank.mu.Lock()
	err := s.bank.transfer(delegator, BondedPoolAddress, sdk.NewCoins(sdk.NewCoin(s.denom, amount)))
	s.bank.mu.Unlock()
	if err != nil {
		return err
	}
	key := s.key(delegator, validator)
	s.delegations[key] = s.get(key).Add(amount)
	return nil
}

func (s *InMemoryStakingKeeper) Undelegate(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress, amount math.Int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.key(delegator, validator)
	if s.get(key).LT(amount) {
		return time.Time{}, fmt.Errorf("delegation to %s is %s, cannot undelegate %s", validator, s.get(key), amount)
	}
	s.bank.mu.Lock()
	err := s.bank.transfer(BondedPoolAddress, delegator, sdk.NewCoins(sdk.NewCoin(s.denom, amount)))
	s.bank.mu.Unlock()
	if err != nil {
		return time.Time{}, err
	}
	s.delegations[key] = s.get(key).Sub(amount)
	return sdk.UnwrapSDKContext(ctx).BlockTime().Add(s.unbondingTime), nil
}

func (s *InMemoryStakingKeeper) Redelegate(ctx context.Context, delegator sdk.AccAddress, src, dst sdk.ValAddress, amount math.Int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	srcKey, dstKey := s.key(delegator, src), s.key(delegator, dst)
	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	if s.isReceiving(srcKey, now) {
		return time.Time{}, stakingtypes.ErrTransitiveRedelegation
	}
	if s.get(srcKey).LT(amount) {
		return time.Time{}, fmt.Errorf("delegation to %s is %s, cannot redelegate %s", src, s.get(srcKey), amount)
	}
	s.delegations[srcKey] = s.get(srcKey).Sub(amount)
	s.delegations[dstKey] = s.get(dstKey).Add(amount)
	completion := now.Add(s.unbondingTime)
	s.receiving[dstKey] = completion
	return completion, nil
}

func (s *InMemoryStakingKeeper) HasReceivingRedelegation(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isReceiving(s.key(delegator, validator), sdk.UnwrapSDKContext(ctx).BlockTime()), nil
}

func (s *InMemoryStakingKeeper) isReceiving(key string, now time.Time) bool {
	completion, ok := s.receiving[key]
	return ok && now.Before(completion)
}

// Delegation returns the tokens delegator has bonded to validator.
func (s *InMemoryStakingKeeper) Delegation(delegator sdk.AccAddress, validator sdk.ValAddress) math.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(s.key(delegator, validator))
}

// TotalDelegated sums every delegation held by delegator.
func (s *InMemoryStakingKeeper) TotalDelegated(delegator sdk.AccAddress, validators ...sdk.ValAddress) math.Int {
	total := math.ZeroInt()
	for _, val := range validators {
		total = total.Add(s.Delegation(delegator, val))
	}
	return total
}

// InMemoryDistributionKeeper pays out rewards accrued per validator.
type InMemoryDistributionKeeper struct {
	bank    *InMemoryBankKeeper
	denom   string
	rewards map[string]math.Int
	mu      sync.RWMutex
}

func NewInMemoryDistributionKeeper(bank *InMemoryBankKeeper, denom string) *InMemoryDistributionKeeper {
	return &InMemoryDistributionKeeper{
		bank:    bank,
		denom:   denom,
		rewards: make(map[string]math.Int),
	}
}

// AccrueRewards adds outstanding rewards for the delegation to validator.
func (d *InMemoryDistributionKeeper) AccrueRewards(validator sdk.ValAddress, amount math.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.rewards[validator.String()]
	if !ok {
		current = math.ZeroInt()
	}
	d.rewards[validator.String()] = current.Add(amount)
}

func (d *InMemoryDistributionKeeper) WithdrawDelegationRewards(ctx context.Context, delAddr sdk.AccAddress, valAddr sdk.ValAddress) (sdk.Coins, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	amount, ok := d.rewards[valAddr.String()]
	if !ok || amount.IsZero() {
		return sdk.NewCoins(), nil
	}
	delete(d.rewards, valAddr.String())
	coins := sdk.NewCoins(sdk.NewCoin(d.denom, amount))
	d.bank.Fund(delAddr, coins)
	return coins, nil
}

// StaticRanking returns a fixed, replaceable validator list.
type StaticRanking struct {
	validators []sdk.ValAddress
	Err        error
	mu         sync.RWMutex
}

var _ types.ValidatorRanking = (*StaticRanking)(nil)

func NewStaticRanking(validators ...sdk.ValAddress) *StaticRanking {
	return &StaticRanking{validators: validators}
}

func (r *StaticRanking) SetValidators(validators ...sdk.ValAddress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators = validators
}

func (r *StaticRanking) TopValidators(ctx context.Context, n uint32) ([]sdk.ValAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if int(n) > len(r.validators) {
		n = uint32(len(r.validators))
	}
	top := make([]sdk.ValAddress, n)
	copy(top, r.validators[:n])
	return top, nil
}

// InMemoryWrappedToken backs wrapped balances one to one with native tokens held in escrow.
type InMemoryWrappedToken struct {
	bank     *InMemoryBankKeeper
	denom    string
	balances map[string]math.Int
	mu       sync.RWMutex
}

var WrappedEscrowAddress = authtypes.NewModuleAddress("wrapped_token_escrow")

var _ types.WrappedToken = (*InMemoryWrappedToken)(nil)

func NewInMemoryWrappedToken(bank *InMemoryBankKeeper, denom string) *InMemoryWrappedToken {
	return &InMemoryWrappedToken{
		bank:     bank,
		denom:    denom,
		balances: make(map[string]math.Int),
	}
}

func (w *InMemoryWrappedToken) get(addr sdk.AccAddress) math.Int {
	if amount, ok := w.balances[addr.String()]; ok {
		return amount
	}
	return math.ZeroInt()
}

func (w *InMemoryWrappedToken) Wrap(ctx context.Context, from, recipient sdk.AccAddress, amount math.Int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bank.mu.Lock()
	err := w.bank.transfer(from, WrappedEscrowAddress, sdk.NewCoins(sdk.NewCoin(w.denom, amount)))
	w.bank.mu.Unlock()
	if err != nil {
		return err
	}
	w.balances[recipient.String()] = w.get(recipient).Add(amount)
	return nil
}

func (w *InMemoryWrappedToken) Unwrap(ctx context.Context, owner, recipient sdk.AccAddress, amount math.Int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.get(owner).LT(amount) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("wrapped balance %s is smaller than %s", w.get(owner), amount)
	}
	w.bank.mu.Lock()
	err := w.bank.transfer(WrappedEscrowAddress, recipient, sdk.NewCoins(sdk.NewCoin(w.denom, amount)))
	w.bank.mu.Unlock()
	if err != nil {
		return err
	}
	w.balances[owner.String()] = w.get(owner).Sub(amount)
	return nil
}

// BalanceOf returns the wrapped balance of addr.
func (w *InMemoryWrappedToken) BalanceOf(addr sdk.AccAddress) math.Int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.get(addr)
}
