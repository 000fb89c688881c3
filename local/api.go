package local
import (
	"os"
	"time"
	"strings"
	"net/http"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/config"
	"github.com/r3dacted42/stego/network"
)

func NewApiHandler( sc *config.ServerConfiguration,
			logger *util.Logger,
			queue *network.Queue ) http.Handler {

	mux := http.NewServeMux()

	// user-related pages, if any
	for uri, page := range sc.Pages {
		mux.HandleFunc( uri, func(w http.ResponseWriter, r *http.Request) {
			sendFile( page, sc.NotFoundPage, w )
		})
	}

	h := &handlers{ logger, queue, sc.MaxBodyBytes }

	// raw RGBA pixel buffers
	mux.HandleFunc("POST /api/image/encode", h.imageEncode )
	mux.HandleFunc("POST /api/image/decode", h.imageDecode )
	mux.HandleFunc("POST /api/image/capacity", h.imageCapacity )

	// carrier text
	mux.HandleFunc("POST /api/text/encode", h.textEncode )
	mux.HandleFunc("POST /api/text/decode", h.textDecode )

	// whole image files
	mux.HandleFunc("POST /api/image/file/encode", h.imageFileEncode )
	mux.HandleFunc("POST /api/image/file/decode", h.imageFileDecode )
	mux.HandleFunc("POST /api/image/file/capacity", h.imageFileCapacity )

	return mux
}

func RunApiServer( sc *config.ServerConfiguration,
			logger *util.Logger,
			queue *network.Queue ) error {

	server := &http.Server{
		Addr: sc.Address,
		Handler: NewApiHandler( sc, logger, queue ),
		ReadHeaderTimeout: 10 * time.Second,
	}
	util.DebugPrintln( util.CyanColor + "Listening and serving at address " + sc.Address + util.ResetColor )
	logger.LogInfo( "Listening and serving at address " + sc.Address )
	return server.ListenAndServe()
}

func sendFile( filename, notFoundPage string, w http.ResponseWriter ) {
	htmlPage, err := os.ReadFile( filename )
	if err != nil {
		htmlPage, err = os.ReadFile( notFoundPage )
		w.WriteHeader( http.StatusNotFound )
		if err != nil {
			w.Write( []byte("Not found") )
		} else {
			w.Write( htmlPage )
		}
		return
	}
	if strings.HasSuffix( filename, ".css" ) {
		w.Header().Set("Content-Type", "text/css")
	} else if strings.HasSuffix( filename, ".js" ) {
		w.Header().Set("Content-Type", "text/javascript")
	}
	w.Write( htmlPage )
}
