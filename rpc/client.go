// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/fault"
	"github.com/bitmark-inc/steemtx/rpc/ratelimit"
	"github.com/bitmark-inc/steemtx/version"
)

// defaults for zero option values
const (
	DefaultRateLimit    = 10.0
	DefaultRetryElapsed = 30 * time.Second
	DefaultTimeout      = 10 * time.Second

	headerCacheExpiry  = 10 * time.Minute
	headerCacheCleanup = 20 * time.Minute

	apiNamespace = "condenser_api"
)

// Options - client settings
type Options struct {
	URL          string
	RateLimit    float64       // requests per second
	RetryElapsed time.Duration // total time spent retrying one request
	Timeout      time.Duration // single HTTP exchange
	HTTPClient   *http.Client  // nil creates one with Timeout
	Verbose      bool          // print requests and replies on Handle
	Handle       io.Writer
}

// Client - a connection to one node
type Client struct {
	log     *logger.L
	chain   *chain.Context
	options Options
	http    *http.Client
	limiter *rate.Limiter
	headers *cache.Cache // block number -> *builder.BlockHeader

	requestID        uint64
	lastIrreversible uint32 // from the most recent chain head
}

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
	ID      uint64          `json:"id"`
}

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewClient - create a client for a node URL
func NewClient(log *logger.L, c *chain.Context, options Options) (*Client, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == c {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "chain context")
	}
	if "" == options.URL {
		return nil, errors.Wrap(fault.ErrMissingCollaborator, "node url")
	}

	if options.RateLimit <= 0 {
		options.RateLimit = DefaultRateLimit
	}
	if 0 == options.RetryElapsed {
		options.RetryElapsed = DefaultRetryElapsed
	}
	if 0 == options.Timeout {
		options.Timeout = DefaultTimeout
	}
	if nil == options.Handle {
		options.Verbose = false
	}

	h := options.HTTPClient
	if nil == h {
		h = &http.Client{
			Timeout: options.Timeout,
		}
	}

	burst := int(options.RateLimit)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		log:     log,
		chain:   c,
		options: options,
		http:    h,
		limiter: rate.NewLimiter(rate.Limit(options.RateLimit), burst),
		headers: cache.New(headerCacheExpiry, headerCacheCleanup),
	}, nil
}

// Call - invoke a condenser_api method and decode its result
//
// reply may be nil to discard the result
func (client *Client) Call(ctx context.Context, method string, reply interface{}, params ...interface{}) error {
	if nil == params {
		params = []interface{}{}
	}
	req := request{
		JSONRPC: "2.0",
		Method:  apiNamespace + "." + method,
		Params:  params,
		ID:      atomic.AddUint64(&client.requestID, 1),
	}

	body, err := json.Marshal(req)
	if nil != err {
		return err
	}

	client.printJson(method+" request", req)

	var result json.RawMessage
	operation := func() error {
		if err := ratelimit.Limit(ctx, client.limiter); nil != err {
			return backoff.Permanent(err)
		}
		r, err := client.post(ctx, body)
		if nil != err {
			return err
		}
		result = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = client.options.RetryElapsed

	notify := func(err error, wait time.Duration) {
		client.log.Warnf("%s: retry in: %s  error: %s", method, wait, err)
	}

	client.log.Debugf("call: %s", method)
	err = backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
	if nil != err {
		client.log.Errorf("%s: error: %s", method, err)
		return err
	}

	client.printJson(method+" reply", result)

	if nil == reply {
		return nil
	}
	if err := json.Unmarshal(result, reply); nil != err {
		return errors.Wrapf(fault.ErrRPCFailure, "%s: decode result: %s", method, err)
	}
	return nil
}

// one HTTP exchange
//
// node errors and malformed replies are permanent, anything else may
// succeed on a later attempt
func (client *Client) post(ctx context.Context, body []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.options.URL, bytes.NewReader(body))
	if nil != err {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.AgentID)

	resp, err := client.http.Do(req)
	if nil != err {
		if nil != ctx.Err() {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	switch {
	case http.StatusTooManyRequests == resp.StatusCode, resp.StatusCode >= 500:
		return nil, fmt.Errorf("http status: %s", resp.Status)
	case http.StatusOK != resp.StatusCode:
		return nil, backoff.Permanent(errors.Wrapf(fault.ErrRPCFailure, "http status: %s", resp.Status))
	}

	var reply response
	if err := json.Unmarshal(data, &reply); nil != err {
		return nil, backoff.Permanent(errors.Wrapf(fault.ErrRPCFailure, "decode reply: %s", err))
	}
	if nil != reply.Error {
		return nil, backoff.Permanent(errors.Wrapf(fault.ErrRPCFailure, "code: %d  message: %s", reply.Error.Code, reply.Error.Message))
	}
	if nil == reply.Result {
		return nil, backoff.Permanent(errors.Wrap(fault.ErrRPCFailure, "missing result"))
	}
	return reply.Result, nil
}

func (client *Client) printJson(title string, message interface{}) {
	if !client.options.Verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return
	}
	fmt.Fprintf(client.options.Handle, "%s:\n%s\n", title, b)
}
