package fuzztests

import (
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var pythonSeeds = []string{
	"",
	"x = 1\n",
	"import os\nfrom a.b import (c as d, e)\n",
	"class  Foo(Base, metaclass=M):\n    \"\"\"doc\"\"\"\n    x: int = 0\n",
	"@decorator\nasync def  Fetch(self, Url, *args, key=[], **kw) -> None:\n    Value = await g(Url);  # todo\n",
	"def f(a, /, b, *, c={}):\n    for i in range(10):\n        if i:\n            continue\n        elif i > 2:\n            break\n        else:\n            pass\n",
	"try:\n    x = 1\nexcept (ValueError, KeyError) as e:\n    raise\nelse:\n    y = 2\nfinally:\n    z = 3\n",
	"with open(p) as f, lock:\n    data = f.read()\n",
	"match cmd:\n    case [x, *rest] if x:\n        pass\n    case {'k': v}:\n        pass\n    case _:\n        pass\n",
	"s = f'{a!r:>{w}}' + b'bytes' + r'\\d' + '''multi\nline'''\n",
	"lam = lambda x, *y: [i for i in y if i > x]\n",
	"a = 1\n\n\n\nb = 2\n",
	"while True:\n\tx = 1\n",
	"x = (1,\n",
	"def f(:\n",
	"if x\n    y = 1\n",
	"   indented = 1\n",
	"s = 'unterminated\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range pythonSeeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
