// Package ipfsclient wraps the IPFS HTTP API used to store and retrieve
// published archive artifacts. It talks to a remote
// Kubo node over its HTTP API rather than embedding a node, mirroring how
// the rest of TacoPKM treats the chain and IPFS as external services
// reached over the network rather than processes we host.
package ipfsclient

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/ipfs/go-cid"
	ipfsfiles "github.com/ipfs/go-ipfs-files"
	httpapi "github.com/ipfs/go-ipfs-http-client"
	icore "github.com/ipfs/interface-go-ipfs-core"
	icorepath "github.com/ipfs/interface-go-ipfs-core/path"
	"github.com/multiformats/go-multiaddr"

	"github.com/Doner357/TacoPKM-CLI/internal/xerrors"
)

// Client wraps a connection to a single IPFS HTTP API endpoint.
type Client struct {
	api icore.CoreAPI
	url string
}

// Dial connects to the IPFS HTTP API at apiURL ("http://host:port/api/v0"
// or a multiaddr such as "/ip4/127.0.0.1/tcp/5001"), confirming the node
// answers before returning.
func Dial(ctx context.Context, apiURL string) (*Client, error) {
	var api icore.CoreAPI
	var err error
	if strings.HasPrefix(apiURL, "/") {
		var addr multiaddr.Multiaddr
		addr, err = multiaddr.NewMultiaddr(apiURL)
		if err != nil {
			return nil, xerrors.Newf(xerrors.KindValidation, "invalid IPFS multiaddr %q", apiURL).WithCause(err)
		}
		api, err = httpapi.NewApi(addr)
	} else {
		api, err = httpapi.NewURLApiWithClient(apiURL, &http.Client{})
	}
	if err != nil {
		return nil, xerrors.Newf(xerrors.KindIPFSUnreachable, "could not build IPFS client for %s", apiURL).WithCause(err)
	}

	c := &Client{api: api, url: apiURL}
	if _, err := c.api.Key().Self(ctx); err != nil {
		return nil, xerrors.Newf(xerrors.KindIPFSUnreachable, "could not reach IPFS node at %s", apiURL).WithCause(err)
	}
	return c, nil
}

// Add streams r to the node's UnixFS layer and returns the resulting CID
// string. Pinning is left to the node's own default.
func (c *Client) Add(ctx context.Context, r io.Reader) (string, error) {
	node := ipfsfiles.NewReaderFile(r)
	resolved, err := c.api.Unixfs().Add(ctx, node)
	if err != nil {
		return "", translate(err)
	}
	return resolved.Cid().String(), nil
}

// Cat fetches the content addressed by hash and returns a reader over it.
// The caller must Close the returned reader.
func (c *Client) Cat(ctx context.Context, hash string) (io.ReadCloser, error) {
	id, err := cid.Decode(hash)
	if err != nil {
		return nil, xerrors.Newf(xerrors.KindValidation, "invalid IPFS hash %q", hash).WithCause(err)
	}
	node, err := c.api.Unixfs().Get(ctx, icorepath.IpfsPath(id))
	if err != nil {
		return nil, translate(err)
	}
	f, ok := node.(ipfsfiles.File)
	if !ok {
		return nil, xerrors.Newf(xerrors.KindBadRecord, "IPFS object %s is not a file", hash)
	}
	return f, nil
}

// Probe reports whether hash resolves to a retrievable object without
// downloading its content, for instance to detect an artifact pinned at
// publish time but later unpinned or garbage collected. No command calls
// it at present.
func (c *Client) Probe(ctx context.Context, hash string) error {
	id, err := cid.Decode(hash)
	if err != nil {
		return xerrors.Newf(xerrors.KindValidation, "invalid IPFS hash %q", hash).WithCause(err)
	}
	_, err = c.api.Dag().Get(ctx, id)
	if err != nil {
		return translate(err)
	}
	return nil
}

// translate classifies an IPFS API error into the shared error taxonomy.
// "not found"/"no link"/"dag node not found" style messages are IPFS's own
// wording for "the referenced object isn't retrievable"; anything else is
// treated as a transport-level unreachability.
func translate(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not found"), strings.Contains(lower, "no link named"), strings.Contains(lower, "no such file"):
		return xerrors.Newf(xerrors.KindIPFSNotFound, "IPFS object not found").WithCause(err)
	default:
		return xerrors.Newf(xerrors.KindIPFSUnreachable, "IPFS request failed: %s", msg).WithCause(err)
	}
}
