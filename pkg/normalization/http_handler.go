package normalization

import (
	"bufio"
	"net/http"
	"strings"

	"github.com/buildbarn/bb-pathname/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maximumRequestBodySizeBytes limits the size of batches of pathname
// strings submitted through POST requests.
const maximumRequestBodySizeBytes = 1 << 20

type httpHandler struct {
	normalizer Normalizer
}

// NewHTTPHandler creates an HTTP handler that normalizes pathname
// strings.
//
// GET requests normalize the pathname string provided in query
// parameter "path". POST requests normalize a newline separated list of
// pathname strings contained in the request body. Results are returned
// as plain text.
func NewHTTPHandler(normalizer Normalizer) http.Handler {
	return &httpHandler{
		normalizer: normalizer,
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, status.Convert(err).Message(), util.HTTPStatusCodeFromError(err))
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		values, ok := r.URL.Query()["path"]
		if !ok || len(values) != 1 {
			writeError(w, status.Error(codes.InvalidArgument, "Exactly one \"path\" query parameter must be provided"))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(h.normalizer.Normalize(values[0]) + "\n"))
	case http.MethodPost:
		var out strings.Builder
		scanner := bufio.NewScanner(http.MaxBytesReader(w, r.Body, maximumRequestBodySizeBytes))
		scanner.Buffer(nil, maximumRequestBodySizeBytes)
		for scanner.Scan() {
			out.WriteString(h.normalizer.Normalize(scanner.Text()))
			out.WriteByte('\n')
		}
		if err := scanner.Err(); err != nil {
			writeError(w, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to read request body"))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(out.String()))
	default:
		writeError(w, status.Errorf(codes.Unimplemented, "Method %#v is not supported", r.Method))
	}
}
