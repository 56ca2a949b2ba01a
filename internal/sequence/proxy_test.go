package sequence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uniseq/internal/adapters/alphabet"
	"uniseq/internal/adapters/xmldoc"
	"uniseq/internal/core/domain"
	"uniseq/internal/sequence"
)

// countingFetcher records how often it is asked for a record.
type countingFetcher struct {
	calls int
	data  []byte
	err   error
}

func (f *countingFetcher) Fetch(_ context.Context, _ domain.Accession) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func newProxy(t *testing.T, data string) *sequence.ProxySequence {
	t.Helper()
	seq, err := sequence.NewFromXML([]byte(data), alphabet.AminoAcid(), xmldoc.NewParser(), &recordingLogger{})
	require.NoError(t, err)
	return seq
}

func TestNew(t *testing.T) {
	t.Run("valid accession fetches and tokenizes", func(t *testing.T) {
		fetcher := &countingFetcher{data: []byte(recordXML)}
		seq, err := sequence.New(context.Background(), "p12345", alphabet.AminoAcid(), fetcher, xmldoc.NewParser(), &recordingLogger{})
		require.NoError(t, err)
		assert.Equal(t, 1, fetcher.calls)
		assert.Equal(t, 20, seq.Length())
		assert.Equal(t, "MSKVLAVLPGRSTEVQAAWK", seq.String())
	})

	t.Run("invalid accession aborts before any fetch", func(t *testing.T) {
		fetcher := &countingFetcher{data: []byte(recordXML)}
		_, err := sequence.New(context.Background(), "12345", alphabet.AminoAcid(), fetcher, xmldoc.NewParser(), &recordingLogger{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidAccession))
		assert.Equal(t, 0, fetcher.calls)
	})

	t.Run("fetch failure aborts construction", func(t *testing.T) {
		fetcher := &countingFetcher{err: domain.ErrFetchFailed}
		_, err := sequence.New(context.Background(), "P12345", alphabet.AminoAcid(), fetcher, xmldoc.NewParser(), &recordingLogger{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFetchFailed))
	})

	t.Run("parse failure aborts construction", func(t *testing.T) {
		fetcher := &countingFetcher{data: []byte("<uniprot><entry>")}
		_, err := sequence.New(context.Background(), "P12345", alphabet.AminoAcid(), fetcher, xmldoc.NewParser(), &recordingLogger{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRecordParseFailed))
	})

	t.Run("unresolvable sequence text aborts construction", func(t *testing.T) {
		fetcher := &countingFetcher{data: []byte(`<uniprot><entry><sequence>MSKV1</sequence></entry></uniprot>`)}
		_, err := sequence.New(context.Background(), "P12345", alphabet.AminoAcid(), fetcher, xmldoc.NewParser(), &recordingLogger{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCompoundNotFound))
	})
}

func TestProxySequence_CompoundAt(t *testing.T) {
	seq := newProxy(t, recordXML)

	first, err := seq.CompoundAt(1)
	require.NoError(t, err)
	assert.Equal(t, "M", first.Value)

	last, err := seq.CompoundAt(20)
	require.NoError(t, err)
	assert.Equal(t, "K", last.Value)

	for _, position := range []int{0, -1, 21} {
		_, err := seq.CompoundAt(position)
		require.Error(t, err, "position %d", position)
		assert.True(t, errors.Is(err, domain.ErrPositionOutOfRange))
	}
}

func TestProxySequence_IndexOf(t *testing.T) {
	seq := newProxy(t, recordXML)
	valine, ok := alphabet.AminoAcid().CompoundFor("V")
	require.True(t, ok)

	assert.Equal(t, 4, seq.IndexOf(valine))
	assert.Equal(t, 15, seq.LastIndexOf(valine))

	// Lookup is case-insensitive on the compound value.
	assert.Equal(t, 4, seq.IndexOf(domain.Compound{Value: "v"}))

	histidine, ok := alphabet.AminoAcid().CompoundFor("H")
	require.True(t, ok)
	assert.Equal(t, 0, seq.IndexOf(histidine))
	assert.Equal(t, 0, seq.LastIndexOf(histidine))
}

func TestProxySequence_Equal(t *testing.T) {
	t.Run("same alphabet and compounds", func(t *testing.T) {
		a := newProxy(t, recordXML)
		b := newProxy(t, recordXML)
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("hash agrees for equal sequences", func(t *testing.T) {
		a := newProxy(t, recordXML)
		b := newProxy(t, recordXML)
		assert.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("different content", func(t *testing.T) {
		a := newProxy(t, recordXML)
		b := newProxy(t, `<uniprot><entry><sequence>MSKV</sequence></entry></uniprot>`)
		assert.False(t, a.Equal(b))
		assert.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("case-flipped compounds are still equal", func(t *testing.T) {
		// singleLetterAlphabet preserves the case it is given, so the two
		// sequences hold different compound values that match ignoring case.
		shared := &singleLetterAlphabet{}
		a := proxyWithAlphabet(t, `<uniprot><entry><sequence>MSKV</sequence></entry></uniprot>`, shared)
		b := proxyWithAlphabet(t, `<uniprot><entry><sequence>mskv</sequence></entry></uniprot>`, shared)

		assert.NotEqual(t, a.String(), b.String())
		assert.True(t, a.Equal(b))
	})

	t.Run("different alphabet instance", func(t *testing.T) {
		a := newProxy(t, recordXML)
		b := proxyWithAlphabet(t, recordXML, &singleLetterAlphabet{})

		// Identical content is not enough; the alphabet instance must match.
		assert.Equal(t, a.String(), b.String())
		assert.False(t, a.Equal(b))
	})

	t.Run("nil other", func(t *testing.T) {
		a := newProxy(t, recordXML)
		assert.False(t, a.Equal(nil))
	})
}

// singleLetterAlphabet accepts any single letter and preserves its case.
type singleLetterAlphabet struct{}

func (*singleLetterAlphabet) CompoundFor(s string) (domain.Compound, bool) {
	if len(s) != 1 {
		return domain.Compound{}, false
	}
	c := s[0]
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return domain.Compound{}, false
	}
	return domain.Compound{Value: s}, true
}

func proxyWithAlphabet(t *testing.T, data string, alpha domain.Alphabet) *sequence.ProxySequence {
	t.Helper()
	root, err := xmldoc.NewParser().Parse([]byte(data))
	require.NoError(t, err)
	seq, err := sequence.NewFromRecord(sequence.NewRecord(root, &recordingLogger{}), alpha)
	require.NoError(t, err)
	return seq
}

func (*singleLetterAlphabet) MaxCompoundLength() int {
	return 1
}

func TestProxySequence_CountCompounds(t *testing.T) {
	seq := newProxy(t, recordXML)
	count, err := seq.CountCompounds(domain.Compound{Value: "M"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCountingUnsupported))
	assert.Zero(t, count)
}

func TestProxySequence_Compounds(t *testing.T) {
	seq := newProxy(t, recordXML)
	compounds := seq.Compounds()
	require.Len(t, compounds, 20)

	// The returned slice is a copy; mutating it leaves the sequence intact.
	compounds[0] = domain.Compound{Value: "X"}
	first, err := seq.CompoundAt(1)
	require.NoError(t, err)
	assert.Equal(t, "M", first.Value)
}

func TestProxySequence_Metadata(t *testing.T) {
	seq := newProxy(t, recordXML)

	assert.Equal(t, "TEST_HUMAN", seq.Name().ID)
	assert.Len(t, seq.Accessions(), 2)
	assert.Equal(t, []string{"3D-structure", "Cytoplasm"}, seq.Keywords())
	assert.Equal(t, "TST1", seq.GeneName())
	assert.Equal(t, "Homo sapiens", seq.OrganismName())
	assert.Len(t, seq.ProteinAliases(), 5)
	assert.Equal(t, []string{"TST1"}, seq.GeneAliases())
	assert.Equal(t, 3, seq.DatabaseReferences().Len())
	assert.Same(t, alphabet.AminoAcid(), seq.Alphabet())
}
