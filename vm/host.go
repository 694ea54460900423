package vm

import (
	"context"
	"encoding/json"
	"time"

	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/dbadapter"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	sdkaddress "github.com/cosmos/cosmos-sdk/codec/address"
)

// Bech32Prefix is the account prefix the host validates addresses against.
const Bech32Prefix = "mars"

var (
	ErrUnknownContract = errorsmod.Register("vm", 2, "unknown contract")
	ErrAlreadyDeployed = errorsmod.Register("vm", 3, "contract address already in use")
	ErrInvalidAddress  = errorsmod.Register("vm", 4, "invalid address")
)

// Host is an in-process model of the chain runtime the contracts deploy
// into. It owns the root store, validates addresses, routes calls between
// registered contracts and applies every transaction atomically: the entry
// call and all deferred outbound messages either commit together or leave
// no trace.
//
// Execution is single-threaded by construction, as on chain: the host
// serializes transactions, so contract code never observes concurrent
// mutation.
type Host struct {
	logger       log.Logger
	root         storetypes.KVStore
	addressCodec address.Codec
	contracts    map[string]Contract
	block        BlockInfo
}

// NewHost returns a host with an empty in-memory store and a genesis block.
func NewHost(logger log.Logger) *Host {
	return &Host{
		logger:       logger.With(log.ModuleKey, "vm"),
		root:         dbadapter.Store{DB: dbm.NewMemDB()},
		addressCodec: sdkaddress.NewBech32Codec(Bech32Prefix),
		contracts:    make(map[string]Contract),
		block:        BlockInfo{Height: 1, Time: time.Unix(1571797419, 0).UTC()},
	}
}

// AddressCodec exposes the host's bech32 codec so contracts validate
// addresses exactly the way the host does.
func (h *Host) AddressCodec() address.Codec {
	return h.addressCodec
}

// Block returns the current block info.
func (h *Host) Block() BlockInfo {
	return h.block
}

// SetBlock moves the chain to the given block. Tests use it to drive
// expiration.
func (h *Host) SetBlock(block BlockInfo) {
	h.block = block
}

// Instantiate deploys a contract at the given address and runs its
// instantiate entry point in one atomic scope. On any error the address
// stays free and the store is untouched.
func (h *Host) Instantiate(contractAddr, sender string, contract Contract, msg any) ([]Event, error) {
	if _, ok := h.contracts[contractAddr]; ok {
		return nil, errorsmod.Wrap(ErrAlreadyDeployed, contractAddr)
	}
	if err := h.validateAddr(contractAddr); err != nil {
		return nil, err
	}
	if err := h.validateAddr(sender); err != nil {
		return nil, err
	}
	bz, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	branch := cachekv.NewStore(h.root)
	ctx := withStore(context.Background(), branch)

	h.contracts[contractAddr] = contract
	resp, err := contract.Instantiate(ctx, h.env(contractAddr), MessageInfo{Sender: sender}, bz)
	if err != nil {
		delete(h.contracts, contractAddr)
		return nil, err
	}

	events := []Event{{Contract: contractAddr, Attributes: resp.Attributes}}
	events, err = h.drain(ctx, events, pending(contractAddr, resp.Messages))
	if err != nil {
		delete(h.contracts, contractAddr)
		return nil, err
	}

	branch.Write()
	h.logger.Info("contract instantiated", "contract", contractAddr, "sender", sender)
	return events, nil
}

// Execute runs one transaction against a contract. The returned events
// cover the entry call and every outbound message it transitively emitted,
// in dispatch order. On error nothing is committed.
func (h *Host) Execute(contractAddr, sender string, msg any) ([]Event, error) {
	if err := h.validateAddr(sender); err != nil {
		return nil, err
	}
	bz, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	branch := cachekv.NewStore(h.root)
	ctx := withStore(context.Background(), branch)

	events, err := h.drain(ctx, nil, []queuedCall{{contract: contractAddr, sender: sender, msg: bz}})
	if err != nil {
		return nil, err
	}

	branch.Write()
	return events, nil
}

// Query runs a read-only call and unmarshals the JSON response into result.
// Queries see only committed state and can never write.
func (h *Host) Query(contractAddr string, msg, result any) error {
	contract, ok := h.contracts[contractAddr]
	if !ok {
		return errorsmod.Wrap(ErrUnknownContract, contractAddr)
	}
	bz, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// throwaway branch: writes from a buggy query handler die here
	ctx := withStore(context.Background(), cachekv.NewStore(h.root))

	res, err := contract.Query(ctx, h.env(contractAddr), bz)
	if err != nil {
		return err
	}
	return json.Unmarshal(res, result)
}

// RunTx runs fn against a fresh branch of the root store and commits only
// if fn succeeds. Genesis import/export and tests use it to reach keepers
// outside a contract call.
func (h *Host) RunTx(fn func(ctx context.Context) error) error {
	branch := cachekv.NewStore(h.root)
	if err := fn(withStore(context.Background(), branch)); err != nil {
		return err
	}
	branch.Write()
	return nil
}

type queuedCall struct {
	contract string
	sender   string
	msg      json.RawMessage
}

func pending(sender string, msgs []ExecuteRequest) []queuedCall {
	queue := make([]queuedCall, 0, len(msgs))
	for _, m := range msgs {
		queue = append(queue, queuedCall{contract: m.ContractAddr, sender: sender, msg: m.Msg})
	}
	return queue
}

// drain executes the queued calls FIFO, appending messages each call emits.
// The sender of an emitted message is the emitting contract's address.
func (h *Host) drain(ctx context.Context, events []Event, queue []queuedCall) ([]Event, error) {
	for len(queue) > 0 {
		call := queue[0]
		queue = queue[1:]

		contract, ok := h.contracts[call.contract]
		if !ok {
			return nil, errorsmod.Wrap(ErrUnknownContract, call.contract)
		}
		resp, err := contract.Execute(ctx, h.env(call.contract), MessageInfo{Sender: call.sender}, call.msg)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{Contract: call.contract, Attributes: resp.Attributes})
		queue = append(queue, pending(call.contract, resp.Messages)...)
	}
	return events, nil
}

func (h *Host) env(contractAddr string) Env {
	return Env{Block: h.block, Contract: contractAddr}
}

func (h *Host) validateAddr(addr string) error {
	if _, err := h.addressCodec.StringToBytes(addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: %s", addr, err)
	}
	return nil
}
