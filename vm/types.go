package vm

import (
	"context"
	"encoding/json"
	"time"
)

// BlockInfo is the host-provided view of the block a transaction runs in.
type BlockInfo struct {
	Height uint64
	Time   time.Time
}

// TimeSeconds returns the block time as unix seconds, the resolution the
// original medal metadata records.
func (b BlockInfo) TimeSeconds() uint64 {
	return uint64(b.Time.Unix())
}

// TimeNanos returns the block time as unix nanoseconds, the resolution
// expirations compare against.
func (b BlockInfo) TimeNanos() uint64 {
	return uint64(b.Time.UnixNano())
}

// Env carries the per-call environment handed to every entry point.
type Env struct {
	Block    BlockInfo
	Contract string
}

// MessageInfo identifies the verified sender of the call. Signature
// verification happened upstream in the real host; the sender string is
// already authenticated.
type MessageInfo struct {
	Sender string
}

// Attribute is a single key/value pair surfaced to host indexers.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is the set of attributes one contract call produced.
type Event struct {
	Contract   string      `json:"contract"`
	Attributes []Attribute `json:"attributes"`
}

// ExecuteRequest is an outbound call to another contract, dispatched by the
// host after the emitting call returns, inside the same atomic scope.
type ExecuteRequest struct {
	ContractAddr string          `json:"contract_addr"`
	Msg          json.RawMessage `json:"msg"`
}

// Response is what every state-changing entry point returns: deferred
// outbound messages, indexable attributes and an optional data payload.
// Handlers must fully compute outbound messages before returning; nothing
// runs until the handler has succeeded.
type Response struct {
	Messages   []ExecuteRequest `json:"messages,omitempty"`
	Attributes []Attribute      `json:"attributes,omitempty"`
	Data       []byte           `json:"data,omitempty"`
}

// NewResponse returns an empty response.
func NewResponse() *Response {
	return &Response{}
}

// AddAttribute appends a key/value attribute.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddMessage appends a deferred execute call targeting contractAddr, with
// the JSON encoding of msg as its body.
func (r *Response) AddMessage(contractAddr string, msg any) error {
	bz, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	r.Messages = append(r.Messages, ExecuteRequest{ContractAddr: contractAddr, Msg: bz})
	return nil
}

// Contract is the uniform entry surface every module exposes to the host.
// The context carries the transaction's store branch; state written through
// it is only visible outside once the host commits.
type Contract interface {
	Instantiate(ctx context.Context, env Env, info MessageInfo, msg json.RawMessage) (*Response, error)
	Execute(ctx context.Context, env Env, info MessageInfo, msg json.RawMessage) (*Response, error)
	Query(ctx context.Context, env Env, msg json.RawMessage) ([]byte, error)
}
