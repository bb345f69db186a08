package chainclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	bundledabi "github.com/Doner357/TacoPKM-CLI/abi"
)

// artifact is the shape of abi/registry.json: an "abi" field holding the
// standard ABI array, alongside whatever else a build toolchain wrote.
type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

var (
	loadOnce  sync.Once
	loadedABI ethabi.ABI
	loadErr   error
)

// LoadABI parses the bundled registry ABI exactly once per process.
func LoadABI() (ethabi.ABI, error) {
	loadOnce.Do(func() {
		var art artifact
		if err := json.Unmarshal(bundledabi.Bundled, &art); err != nil {
			loadErr = fmt.Errorf("parsing bundled ABI: %w", err)
			return
		}
		parsed, err := ethabi.JSON(strings.NewReader(string(art.ABI)))
		if err != nil {
			loadErr = fmt.Errorf("decoding bundled ABI: %w", err)
			return
		}
		loadedABI = parsed
	})
	return loadedABI, loadErr
}
