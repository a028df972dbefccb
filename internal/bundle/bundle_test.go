package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apigee-inventory/internal/model"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBasePath(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
		want    string
		ok      bool
		wantErr bool
	}{
		{
			name: "nested",
			content: `<?xml version="1.0" encoding="UTF-8"?>
<ProxyEndpoint name="default">
  <HTTPProxyConnection>
    <BasePath>  /v1/orders  </BasePath>
  </HTTPProxyConnection>
</ProxyEndpoint>`,
			want: "/v1/orders",
			ok:   true,
		},
		{
			name:    "first match wins",
			content: `<P><A><BasePath>/a</BasePath></A><BasePath>/b</BasePath></P>`,
			want:    "/a",
			ok:      true,
		},
		{
			name:    "missing element",
			content: `<ProxyEndpoint><HTTPProxyConnection/></ProxyEndpoint>`,
		},
		{
			name:    "empty element",
			content: `<ProxyEndpoint><BasePath>   </BasePath></ProxyEndpoint>`,
		},
		{
			name:    "latin1",
			content: "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><ProxyEndpoint><BasePath>/caf\xe9</BasePath></ProxyEndpoint>",
			want:    "/café",
			ok:      true,
		},
		{
			name:    "text after child",
			content: `<ProxyEndpoint><BasePath>/v2<X/>tail</BasePath></ProxyEndpoint>`,
			want:    "/v2",
			ok:      true,
		},
		{
			name:    "malformed",
			content: `<ProxyEndpoint><BasePath>/x</ProxyEndpoint>`,
			wantErr: true,
		},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tc.name, "default.xml"), tc.content)
			got, ok, err := BasePath(path)
			assert.Equal(t, tc.want, got, "case %d", i)
			assert.Equal(t, tc.ok, ok)
			if tc.wantErr {
				var pe *ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, path, pe.Path)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBasePathMissingFile(t *testing.T) {
	got, ok, err := BasePath(filepath.Join(t.TempDir(), "proxies", "default.xml"))
	assert.Empty(t, got)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestPolicyType(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"verify", `<VerifyAPIKey async="false" name="Verify"><APIKey ref="request.queryparam.apikey"/></VerifyAPIKey>`, "VerifyAPIKey", false},
		{"prolog", "<?xml version=\"1.0\"?>\n<!-- quota -->\n<Quota name=\"Quota\"/>\n", "Quota", false},
		{"truncated", `<AssignMessage name="x"><Set>`, model.Unknown, true},
		{"not markup", `this is not xml`, model.Unknown, true},
		{"empty", ``, model.Unknown, true},
		{"two roots", `<A/><B/>`, model.Unknown, true},
		{"latin1", "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><AssignMessage name=\"caf\xe9\"/>", "AssignMessage", false},
		{"windows-1252", "<?xml version=\"1.0\" encoding=\"windows-1252\"?>\n<RaiseFault name=\"\x93quoted\x94\"/>", "RaiseFault", false},
		{"default namespace", `<Quota xmlns="urn:x" name="q"/>`, "Quota", false},
		{"prefixed", `<ns:Quota xmlns:ns="urn:x" name="q"/>`, "Quota", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PolicyType(writeFile(t, filepath.Join(dir, tc.name+".xml"), tc.content))
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicyTypeMissingFile(t *testing.T) {
	got, err := PolicyType(filepath.Join(t.TempDir(), "gone.xml"))
	assert.Equal(t, model.Unknown, got)
	assert.Error(t, err)
}

func TestTarget(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "url",
			content: `<TargetEndpoint><HTTPTargetConnection><URL> https://api.example.com </URL></HTTPTargetConnection></TargetEndpoint>`,
			want:    "https://api.example.com",
		},
		{
			name:    "host port path",
			content: `<TargetEndpoint><HTTPTargetConnection><Host>h</Host><Port>8080</Port><Path>/p</Path></HTTPTargetConnection></TargetEndpoint>`,
			want:    "http://h:8080/p",
		},
		{
			name:    "host only",
			content: `<TargetEndpoint><HTTPTargetConnection><Host> backend.internal </Host></HTTPTargetConnection></TargetEndpoint>`,
			want:    "http://backend.internal",
		},
		{
			name:    "empty url falls back to host",
			content: `<TargetEndpoint><HTTPTargetConnection><URL/><Host>h</Host><Path>/p</Path></HTTPTargetConnection></TargetEndpoint>`,
			want:    "http://h/p",
		},
		{
			name:    "no url no host",
			content: `<TargetEndpoint><HTTPTargetConnection><Port>8080</Port><Path>/p</Path></HTTPTargetConnection></TargetEndpoint>`,
			want:    model.Unknown,
		},
		{
			name:    "load balancer only",
			content: `<TargetEndpoint><HTTPTargetConnection><LoadBalancer><Server name="ts1"/></LoadBalancer></HTTPTargetConnection></TargetEndpoint>`,
			want:    model.Unknown,
		},
		{
			name:    "no connection",
			content: `<TargetEndpoint><LocalTargetConnection><APIProxy>other</APIProxy></LocalTargetConnection></TargetEndpoint>`,
			want:    model.Unknown,
		},
		{
			name:    "malformed",
			content: `<TargetEndpoint><HTTPTargetConnection><URL>https://x</URL>`,
			want:    model.Unknown,
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tc.name, "prod.xml"), tc.content)
			name, info, err := Target(path)
			assert.Equal(t, "prod", name)
			assert.Equal(t, tc.want, info)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTargetMissingFile(t *testing.T) {
	name, info, err := Target(filepath.Join(t.TempDir(), "targets", "default.xml"))
	assert.Equal(t, "default", name)
	assert.Equal(t, model.Unknown, info)
	assert.NoError(t, err)
}

func TestTargetName(t *testing.T) {
	assert.Equal(t, "prod", TargetName("/x/targets/prod.xml"))
	assert.Equal(t, "prod.json", TargetName("/x/targets/prod.json"))
	assert.Equal(t, "noext", TargetName("noext"))
}
