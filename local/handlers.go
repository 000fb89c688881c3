package local
import (
	"fmt"
	"errors"
	"context"
	"net/http"
	"encoding/json"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/network"
	"github.com/r3dacted42/stego/protocol"
)

func writeJsonResponse( w http.ResponseWriter, status int, v any ) {
	data, err := json.Marshal( v )
	if err != nil {
		http.Error( w, "Internal Server Error", http.StatusInternalServerError )
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader( status )
	w.Write( data )
}

func writeError( w http.ResponseWriter, status int, msg string ) {
	writeJsonResponse( w, status, ErrorResult{ msg } )
}

// reads a JSON body of at most maxBytes into v. Writes the error response itself.
func readRequest( w http.ResponseWriter, r *http.Request, maxBytes int64, v any ) bool {
	if r == nil || r.Body == nil {
		writeError( w, http.StatusBadRequest, "Empty request." )
		return false
	}
	defer r.Body.Close()
	dec := json.NewDecoder( http.MaxBytesReader( w, r.Body, maxBytes ) )
	if err := dec.Decode( v ); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As( err, &tooLarge ) {
			writeError( w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body is larger than %d bytes.", tooLarge.Limit) )
		} else {
			writeError( w, http.StatusBadRequest, "Invalid request. JSON format required." )
		}
		return false
	}
	return true
}

/*
 * submit runs req on the queue and writes either result( resp ) or the
 * error. Codec errors are answered with 422, the queue giving up with 503.
 */
func submit( w http.ResponseWriter, r *http.Request, logger *util.Logger,
		queue *network.Queue, req protocol.Request,
		result func( protocol.Response ) any ) {

	resp, err := queue.Submit( r.Context(), req )
	if err != nil {
		if errors.Is( err, context.Canceled ) {
			// client is gone, nobody to answer
			return
		}
		logger.LogError( fmt.Errorf("%s: %w", protocol.KindName( req.Kind ), err) )
		writeError( w, http.StatusServiceUnavailable, "Server is busy, try again later." )
		return
	}
	if resp.Failed() {
		writeError( w, http.StatusUnprocessableEntity, resp.Error )
		return
	}
	writeJsonResponse( w, http.StatusOK, result( resp ) )
}

type handlers struct {
	logger		*util.Logger
	queue		*network.Queue
	maxBytes	int64
}

func(h *handlers) imageEncode( w http.ResponseWriter, r *http.Request ) {
	var req ImageEncodeRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.ImageEncode,
		Pix: req.Pix,
		Width: req.Width,
		Height: req.Height,
		Message: req.Message,
	}, func( resp protocol.Response ) any {
		return PixelsResult{ resp.Pix }
	})
}

func(h *handlers) imageDecode( w http.ResponseWriter, r *http.Request ) {
	var req ImageDecodeRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.ImageDecode,
		Pix: req.Pix,
		Width: req.Width,
		Height: req.Height,
	}, messageResult )
}

func(h *handlers) imageCapacity( w http.ResponseWriter, r *http.Request ) {
	var req ImageCapacityRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.ImageCapacity,
		Width: req.Width,
		Height: req.Height,
	}, capacityResult )
}

func(h *handlers) textEncode( w http.ResponseWriter, r *http.Request ) {
	var req TextEncodeRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.TextEncode,
		Carrier: req.Carrier,
		Message: req.Message,
	}, func( resp protocol.Response ) any {
		return TextResult{ resp.EncodedText }
	})
}

func(h *handlers) textDecode( w http.ResponseWriter, r *http.Request ) {
	var req TextDecodeRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.TextDecode,
		EncodedText: req.EncodedText,
	}, messageResult )
}

func(h *handlers) imageFileEncode( w http.ResponseWriter, r *http.Request ) {
	var req ImageFileRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.ImageFileEncode,
		File: req.File,
		Message: req.Message,
		Format: req.Format,
	}, func( resp protocol.Response ) any {
		return FileResult{ resp.File }
	})
}

func(h *handlers) imageFileDecode( w http.ResponseWriter, r *http.Request ) {
	var req ImageFileRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.ImageFileDecode,
		File: req.File,
	}, messageResult )
}

func(h *handlers) imageFileCapacity( w http.ResponseWriter, r *http.Request ) {
	var req ImageFileRequest
	if readRequest( w, r, h.maxBytes, &req ) == false {
		return
	}
	submit( w, r, h.logger, h.queue, protocol.Request{
		Kind: protocol.ImageFileCapacity,
		File: req.File,
	}, capacityResult )
}

func messageResult( resp protocol.Response ) any {
	return MessageResult{ resp.Message }
}

func capacityResult( resp protocol.Response ) any {
	return CapacityResult{ resp.MaxMessageBytes }
}
