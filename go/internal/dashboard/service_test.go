package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceOverConnect(t *testing.T) {
	f := newFixture(t)
	mux := http.NewServeMux()
	NewService(f.app).Register(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	standings := connect.NewClient[SeasonMessage, StandingsResponse](
		srv.Client(), srv.URL+rpc.Procedure(serviceName, "GetStandings"), connect.WithCodec(rpc.Codec{}))
	history := connect.NewClient[HistoryMessage, HistoryResponse](
		srv.Client(), srv.URL+rpc.Procedure(serviceName, "GetHistory"), connect.WithCodec(rpc.Codec{}))

	ctx := context.Background()
	res, err := standings.CallUnary(ctx, connect.NewRequest(&SeasonMessage{}))
	require.NoError(t, err)
	require.Len(t, res.Msg.Table, 2)
	assert.Equal(t, "Lions", res.Msg.Table[0].TeamName)

	_, err = standings.CallUnary(ctx, connect.NewRequest(&SeasonMessage{SeasonID: "nope"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = standings.CallUnary(ctx, connect.NewRequest(&SeasonMessage{SeasonID: "8d7e1c4a-1f6b-4c1e-9a57-6b1d2a3c4e5f"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	hist, err := history.CallUnary(ctx, connect.NewRequest(&HistoryMessage{SeasonScope: "same_year"}))
	require.NoError(t, err)
	assert.Len(t, hist.Msg.Records, 3)

	_, err = history.CallUnary(ctx, connect.NewRequest(&HistoryMessage{ColorMode: "rainbow"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
