package metrics

import (
	"net/http"
	"time"

	"github.com/arl/statsviz"
)

// Serve 启动 statsviz 监控端点
// 浏览器访问 http://<addr>/debug/statsviz/ 查看运行时指标
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}
