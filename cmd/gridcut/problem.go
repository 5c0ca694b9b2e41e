package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcut/fastmin"
	"github.com/katalvlaran/gridcut/grid"
)

// problemFile is the on-disk problem:
//
//	{"unary":{"shape":[L,S1,…],"data":[…]},"pairwise":[[…],…],"labels":[…]}
//
// labels is optional.
type problemFile struct {
	Unary struct {
		Shape []int     `json:"shape"`
		Data  []float64 `json:"data"`
	} `json:"unary"`
	Pairwise [][]float64 `json:"pairwise"`
	Labels   []int       `json:"labels,omitempty"`
}

type problem struct {
	cm     *fastmin.CostModel
	labels *grid.Labels // nil if the file has none
}

// result is what minimize writes.
type result struct {
	Shape     []int   `json:"shape"`
	Labels    []int   `json:"labels"`
	Energy    float64 `json:"energy"`
	Cycles    int     `json:"cycles"`
	Converged bool    `json:"converged"`
}

func loadProblem(path string) (*problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading problem %s", path)
	}

	return parseProblem(raw)
}

func parseProblem(raw []byte) (*problem, error) {
	var pf problemFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}

	v, err := pairwiseMatrix(pf.Pairwise)
	if err != nil {
		return nil, err
	}
	cm, err := fastmin.NewCostModel(pf.Unary.Shape, pf.Unary.Data, v)
	if err != nil {
		return nil, err
	}

	p := &problem{cm: cm}
	if pf.Labels == nil {
		return p, nil
	}
	p.labels, err = grid.FromSlice(cm.Shape(), pf.Labels)
	if err != nil {
		return nil, errors.Wrapf(fastmin.ErrShapeMismatch, "initial labels: %v", err)
	}
	if _, err := fastmin.Energy(cm, p.labels); err != nil {
		return nil, errors.Wrap(err, "initial labels")
	}

	return p, nil
}

// pairwiseMatrix packs rows into a dense matrix. Rows must be non-empty
// and of equal length; squareness is left to the cost model.
func pairwiseMatrix(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(fastmin.ErrShapeMismatch, "pairwise matrix is empty")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(fastmin.ErrShapeMismatch, "pairwise row %d has %d values, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

func writeResult(w io.Writer, r result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(r), "writing result")
}
