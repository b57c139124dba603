package preference

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Data_SetServer(t *testing.T) {
	now := time.Now()
	fiveDaysAgo := now.AddDate(0, 0, -5)
	testServer := Server{
		URL:      "http://localhost:8000",
		Username: "admin",
		LastUsed: fiveDaysAgo,
	}

	tests := []struct {
		name              string
		givenData         Data
		givenServerToSet  *Server
		wantServersLength int
		wantURL           string
	}{
		{
			name:              "nil input",
			givenData:         Data{},
			givenServerToSet:  nil,
			wantServersLength: 0,
		},
		{
			name:              "input has <nil> url",
			givenData:         Data{},
			givenServerToSet:  &Server{URL: "<nil>"},
			wantServersLength: 0,
		},
		{
			name: "update existing server's last used field",
			givenData: Data{
				Servers: map[string]Server{testServer.URL: testServer},
			},
			givenServerToSet:  &Server{URL: testServer.URL, Username: "admin"},
			wantServersLength: 1,
			wantURL:           testServer.URL,
		},
		{
			name: "trailing slash matches existing server",
			givenData: Data{
				Servers: map[string]Server{testServer.URL: testServer},
			},
			givenServerToSet:  &Server{URL: testServer.URL + "/", Username: "root"},
			wantServersLength: 1,
			wantURL:           testServer.URL,
		},
		{
			name: "add new server to the list",
			givenData: Data{
				Servers: map[string]Server{testServer.URL: testServer},
			},
			givenServerToSet:  &Server{URL: "https://esim.example.com", Username: "ops"},
			wantServersLength: 2,
			wantURL:           "https://esim.example.com",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.givenData.SetServer(test.givenServerToSet)

			require.Equal(t, test.wantServersLength, len(test.givenData.Servers))

			if test.wantURL != "" {
				got := test.givenData.Server(test.wantURL)

				assert.Equal(t, test.wantURL, got.URL)
				assert.Equal(t, test.givenServerToSet.Username, got.Username)
				assert.False(t, got.LastUsed.Before(now))
			}
		})
	}
}

func Test_Data_Server_unknown(t *testing.T) {
	got := NewData().Server("http://localhost:8000/")
	assert.Equal(t, &Server{URL: "http://localhost:8000"}, got)
}

func Test_Data_RecentlyUsedServers(t *testing.T) {
	local := Server{
		URL:      "http://localhost:8000",
		Username: "admin",
		LastUsed: time.Now().AddDate(0, 0, -5),
	}
	remote := Server{
		URL:      "https://esim.example.com",
		Username: "ops",
		LastUsed: time.Now(),
	}
	testData := Data{
		Servers: map[string]Server{
			local.URL:  local,
			remote.URL: remote,
			"<nil>":    {URL: "<nil>"},
			"":         {},
		},
	}

	tests := []struct {
		name  string
		given int
		want  Servers
	}{
		{
			name:  "return all servers",
			given: -1,
			want:  Servers{remote, local},
		},
		{
			name:  "return only 1 server",
			given: 1,
			want:  Servers{remote},
		},
		{
			name:  "want 3 servers but only 2 exist",
			given: 3,
			want:  Servers{remote, local},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, testData.RecentlyUsedServers(test.given))
		})
	}
}
