// Package metrics defines the prometheus collectors of the ingester.
package metrics

import (
	"strconv"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

const namespace = "chainweb"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func chainLabel(chainID model.ChainID) string {
	return strconv.FormatUint(uint64(chainID), 10)
}
