package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/twinj/uuid"
)

func initHTTPServer(s *CalcServer) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/v1/range/{start}/{end}", s.httpHandleRange).Methods(http.MethodGet)
	r.HandleFunc("/v1/subnet/{addr}/prefix/{size}", s.httpHandlePrefix).Methods(http.MethodGet)
	r.HandleFunc("/v1/subnet/{addr}/mask/{mask}", s.httpHandleMask).Methods(http.MethodGet)

	s.r = r
	return r
}

func (s *CalcServer) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	if origin := req.Header.Get("Origin"); origin != "" {
		rw.Header().Set("Access-Control-Allow-Origin", origin)
		rw.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		rw.Header().Set("Access-Control-Allow-Headers",
			"Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
	}
	// Stop here if its Preflighted OPTIONS request
	if req.Method == "OPTIONS" {
		return
	}

	s.r.ServeHTTP(rw, req)
}

func (s *CalcServer) httpHandleRange(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	reqID := uuid.NewV4().String()

	rangeReq := &RangeRequest{Start: vars["start"], End: vars["end"]}
	plog.Debugf("[%s] range request: start=%s end=%s", reqID, rangeReq.Start, rangeReq.End)

	resp, err := s.Range(rangeReq)
	if err != nil {
		plog.Infof("[%s] rejected: %s", reqID, err)
		httpInvalidInput(w)
		return
	}

	httpEncode(w, resp)
}

func (s *CalcServer) httpHandlePrefix(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	reqID := uuid.NewV4().String()

	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		plog.Infof("[%s] rejected: bad prefix size (%s)", reqID, vars["size"])
		httpInvalidInput(w)
		return
	}

	prefixReq := &PrefixRequest{Address: vars["addr"], PrefixSize: size}
	plog.Debugf("[%s] prefix request: addr=%s size=%d", reqID, prefixReq.Address, prefixReq.PrefixSize)

	resp, err := s.FromPrefix(prefixReq)
	if err != nil {
		plog.Infof("[%s] rejected: %s", reqID, err)
		httpInvalidInput(w)
		return
	}

	httpEncode(w, resp)
}

func (s *CalcServer) httpHandleMask(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	reqID := uuid.NewV4().String()

	maskReq := &MaskRequest{Address: vars["addr"], Mask: vars["mask"]}
	plog.Debugf("[%s] mask request: addr=%s mask=%s", reqID, maskReq.Address, maskReq.Mask)

	resp, err := s.FromMask(maskReq)
	if err != nil {
		plog.Infof("[%s] rejected: %s", reqID, err)
		httpInvalidInput(w)
		return
	}

	httpEncode(w, resp)
}

func httpEncode(w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func httpInvalidInput(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": "enter a valid input"})
}
