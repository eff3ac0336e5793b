// Package connbuild_test verifies the dispatch layer: validation order,
// loud unknown-rule failures, pass-through of collections, configuration
// maps, third builders, and factory errors.
package connbuild_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conweave/connbuild"
)

// TestBuildBipartiteUnknownRule verifies that an unregistered rule fails with
// ErrUnknownRule and that the message names the rule and the family.
func TestBuildBipartiteUnknownRule(t *testing.T) {
	t.Parallel()

	r := connbuild.NewRegistry()
	r.Freeze()

	sources, targets := testCollections(t)
	_, err := r.BuildBipartite("no_such_rule", sources, targets, nil, nil, []connbuild.SynConfig{{}})
	require.ErrorIs(t, err, connbuild.ErrUnknownRule)
	assert.Contains(t, err.Error(), "no_such_rule")
	assert.Contains(t, err.Error(), "bipartite")

	// The third-entity namespace reports its own family.
	_, err = r.BuildThird("no_such_rule", sources, targets, nil, []connbuild.SynConfig{{}})
	require.ErrorIs(t, err, connbuild.ErrUnknownRule)
	assert.Contains(t, err.Error(), "third-entity")
}

// TestBuildBipartiteValidation covers nil collections and empty synapse
// configuration sequences.
func TestBuildBipartiteValidation(t *testing.T) {
	t.Parallel()

	r := connbuild.NewRegistry()
	require.NoError(t, r.RegisterConn("one_to_one", connFactoryFor("one_to_one")))
	r.Freeze()

	sources, targets := testCollections(t)
	syns := []connbuild.SynConfig{{"model": "static"}}

	_, err := r.BuildBipartite("one_to_one", nil, targets, nil, nil, syns)
	require.ErrorIs(t, err, connbuild.ErrNilCollection)

	_, err = r.BuildBipartite("one_to_one", sources, nil, nil, nil, syns)
	require.ErrorIs(t, err, connbuild.ErrNilCollection)

	_, err = r.BuildBipartite("one_to_one", sources, targets, nil, nil, nil)
	require.ErrorIs(t, err, connbuild.ErrNoSynConfigs)

	_, err = r.BuildBipartite("one_to_one", sources, targets, nil, nil, []connbuild.SynConfig{})
	require.ErrorIs(t, err, connbuild.ErrNoSynConfigs)
}

// TestBuildThirdValidation mirrors the bipartite validation for the
// third-entity entry point.
func TestBuildThirdValidation(t *testing.T) {
	t.Parallel()

	r := connbuild.NewRegistry()
	require.NoError(t, r.RegisterThird("third_bernoulli", thirdFactoryFor("third_bernoulli")))
	r.Freeze()

	sources, targets := testCollections(t)
	syns := []connbuild.SynConfig{{}}

	_, err := r.BuildThird("third_bernoulli", nil, targets, nil, syns)
	require.ErrorIs(t, err, connbuild.ErrNilCollection)

	_, err = r.BuildThird("third_bernoulli", sources, targets, nil, nil)
	require.ErrorIs(t, err, connbuild.ErrNoSynConfigs)
}

// TestBuildPassThrough verifies that the dispatch layer forwards every
// argument to the factory untouched: collections by handle, configuration
// maps unexamined, the third builder by reference, and the syn sequence in
// order.
func TestBuildPassThrough(t *testing.T) {
	t.Parallel()

	r := connbuild.NewRegistry()
	require.NoError(t, r.RegisterConn("all_to_all", connFactoryFor("all_to_all")))
	require.NoError(t, r.RegisterThird("third_bernoulli", thirdFactoryFor("third_bernoulli")))
	r.Freeze()

	sources, targets := testCollections(t)
	conn := connbuild.ConnConfig{"allow_autapses": false, "weird key the core must not parse": 42}
	syns := []connbuild.SynConfig{{"model": "static"}, {"model": "stdp", "alpha": 1.1}}

	third, err := r.BuildThird("third_bernoulli", sources, targets, conn, syns)
	require.NoError(t, err)
	require.Equal(t, "third_bernoulli", third.Rule())

	b, err := r.BuildBipartite("all_to_all", sources, targets, third, conn, syns)
	require.NoError(t, err)

	sc, ok := b.(*stubConn)
	require.True(t, ok)
	assert.Same(t, sources, sc.sources)
	assert.Same(t, targets, sc.targets)
	assert.Same(t, third, sc.third)
	assert.Equal(t, conn, sc.conn)
	assert.Equal(t, syns, sc.syns)

	st, ok := third.(*stubThird)
	require.True(t, ok)
	assert.Same(t, sources, st.sources)
	assert.Equal(t, conn, st.conn)
}

// TestBuildNilThirdAllowed verifies that bipartite rules without a
// third-entity population accept a nil third builder.
func TestBuildNilThirdAllowed(t *testing.T) {
	t.Parallel()

	r := connbuild.NewRegistry()
	require.NoError(t, r.RegisterConn("one_to_one", connFactoryFor("one_to_one")))
	r.Freeze()

	sources, targets := testCollections(t)
	b, err := r.BuildBipartite("one_to_one", sources, targets, nil, nil, []connbuild.SynConfig{{}})
	require.NoError(t, err)

	sc, ok := b.(*stubConn)
	require.True(t, ok)
	assert.Nil(t, sc.third)
}

// TestBuildFactoryErrorPassThrough verifies that a factory failure surfaces
// wrapped but with its sentinel intact.
func TestBuildFactoryErrorPassThrough(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("strategy refused configuration")

	r := connbuild.NewRegistry()
	require.NoError(t, r.RegisterConn("picky",
		func(_, _ connbuild.Collection, _ connbuild.ThirdBuilder, _ connbuild.ConnConfig, _ []connbuild.SynConfig) (connbuild.ConnBuilder, error) {
			return nil, errRefused
		}))
	r.Freeze()

	sources, targets := testCollections(t)
	_, err := r.BuildBipartite("picky", sources, targets, nil, nil, []connbuild.SynConfig{{}})
	require.ErrorIs(t, err, errRefused)
	assert.Contains(t, err.Error(), "picky")
}
