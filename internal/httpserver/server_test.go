package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you/hello-users/internal/httpserver"
)

var _ = Describe("HTTP Server", func() {
	timeouts := httpserver.Timeouts{Read: time.Second, Write: time.Second, Idle: time.Second}
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	Context("server creation", func() {
		It("creates server with valid address", func() {
			srv, err := httpserver.New("localhost:9999", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())
			Expect(srv.Addr()).To(Equal("localhost:9999"))
		})

		It("creates server with IP address", func() {
			srv, err := httpserver.New("127.0.0.1:9999", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())
			Expect(srv).NotTo(BeNil())
		})

		It("handles port-only address", func() {
			srv, err := httpserver.New(":9999", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())
			Expect(srv).NotTo(BeNil())
		})

		It("rejects invalid address", func() {
			srv, err := httpserver.New("invalid:host:port", noop, timeouts)
			Expect(err).To(HaveOccurred())
			Expect(srv).To(BeNil())
		})

		It("rejects empty address", func() {
			_, err := httpserver.New("", noop, timeouts)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("server lifecycle", func() {
		var testServer *httpserver.Server

		BeforeEach(func() {
			testServer = nil
		})

		AfterEach(func() {
			if testServer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = testServer.Shutdown(ctx)
			}
		})

		It("starts and handles requests", func() {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("test"))
			})
			var err error
			testServer, err = httpserver.New("127.0.0.1:19997", handler, timeouts)
			Expect(err).NotTo(HaveOccurred())

			go func() {
				_ = testServer.Start()
			}()

			var resp *http.Response
			Eventually(func() error {
				resp, err = http.Get("http://127.0.0.1:19997")
				return err
			}).WithTimeout(2 * time.Second).Should(Succeed())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body, _ := io.ReadAll(resp.Body)
			Expect(string(body)).To(Equal("test"))
		})

		It("shuts down gracefully", func() {
			var err error
			testServer, err = httpserver.New("127.0.0.1:19996", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())

			done := make(chan error, 1)
			go func() {
				done <- testServer.Start()
			}()
			time.Sleep(100 * time.Millisecond)

			Expect(testServer.Shutdown(context.Background())).To(Succeed())
			Eventually(done).WithTimeout(2 * time.Second).Should(Receive(BeNil()))
		})

		It("runs until the context is cancelled", func() {
			srv, err := httpserver.New("127.0.0.1:19995", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- srv.Run(ctx)
			}()

			Eventually(func() error {
				resp, err := http.Get("http://127.0.0.1:19995")
				if err == nil {
					resp.Body.Close()
				}
				return err
			}).WithTimeout(2 * time.Second).Should(Succeed())

			cancel()
			Eventually(done).WithTimeout(2 * time.Second).Should(Receive(BeNil()))
		})

		It("returns listener errors from Run", func() {
			first, err := httpserver.New("127.0.0.1:19994", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())
			testServer = first
			go func() {
				_ = first.Start()
			}()
			Eventually(func() error {
				resp, err := http.Get("http://127.0.0.1:19994")
				if err == nil {
					resp.Body.Close()
				}
				return err
			}).WithTimeout(2 * time.Second).Should(Succeed())

			second, err := httpserver.New("127.0.0.1:19994", noop, timeouts)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Run(context.Background())).To(HaveOccurred())
		})
	})
})
