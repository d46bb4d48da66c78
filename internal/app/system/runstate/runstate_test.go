package runstate

import (
	"sync"
	"testing"
)

func TestFlags(t *testing.T) {
	f := New()

	if f.DB() || f.Mail() {
		t.Error("new flags should start down")
	}

	f.SetDB(true)
	f.SetMail(true)
	f.SetPort(3001)

	if !f.DB() || !f.Mail() {
		t.Error("flags should be up after SetDB/SetMail")
	}
	if f.Port() != 3001 {
		t.Errorf("Port() = %d, want 3001", f.Port())
	}
	if f.Uptime() < 0 {
		t.Errorf("Uptime() = %v, want non-negative", f.Uptime())
	}

	f.SetDB(false)
	if f.DB() {
		t.Error("DB flag should be down after SetDB(false)")
	}
}

func TestFlagsConcurrent(t *testing.T) {
	f := New()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(up bool) {
			defer wg.Done()
			f.SetDB(up)
			f.SetMail(!up)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			_ = f.DB()
			_ = f.Mail()
			_ = f.Port()
		}()
	}
	wg.Wait()
}
