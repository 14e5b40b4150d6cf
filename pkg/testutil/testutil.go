package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// RequireEqualProto asserts that the two passed protocol buffer
// messages are equal.
func RequireEqualProto(t *testing.T, want, got proto.Message) {
	t.Helper()
	if !proto.Equal(want, got) {
		t.Fatalf("Not equal:\nWant:\n\n%s\n\nGot:\n\n%s", mustMarshalToString(t, want), mustMarshalToString(t, got))
	}
}

// RequireEqualStatus asserts that two gRPC statuses are equal. This
// can be used to compare errors returned by functions in this module,
// as they are all gRPC statuses.
func RequireEqualStatus(t *testing.T, want, got error) {
	t.Helper()
	RequireEqualProto(t, status.Convert(want).Proto(), status.Convert(got).Proto())
}

// RequirePrefixedStatus compares that two errors, assumed to be gRPC
// statuses, are the same, except got may have extra trailing characters
// in its message. This is useful for errors that embed messages of
// third party libraries.
func RequirePrefixedStatus(t *testing.T, want, got error) {
	t.Helper()
	wantProto := status.Convert(want).Proto()
	gotProto := status.Convert(got).Proto()
	require.Truef(
		t,
		strings.HasPrefix(gotProto.GetMessage(), wantProto.GetMessage()),
		"Want message of status\n%v\nto have prefix\n%v",
		mustMarshalToString(t, gotProto),
		wantProto.GetMessage())
	gotProto.Message = wantProto.GetMessage()
	RequireEqualProto(t, wantProto, gotProto)
}

func mustMarshalToString(t *testing.T, m proto.Message) string {
	s, err := protojson.MarshalOptions{
		Multiline: true,
	}.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return string(s)
}
