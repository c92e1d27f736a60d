package eval_test

import (
	"testing"

	"src.smy.sh/pkg/eval"
	"src.smy.sh/pkg/eval/evaltest"
	"src.smy.sh/pkg/testutil"
)

func TestArithmetic(t *testing.T) {
	evaltest.Run(t, `
>>> 1
1
>>> 4.8
4.8
>>> a=1
>>> a
1
>>> a=1
>>> b=2
>>> a+b
3
>>> 1+3
4
>>> 5-4
1
>>> -5
-5
>>> 2*3
6
>>> 9/3
3.0
>>> 4 % 3
1
>>> 1+2*3
7
>>> (1+2)*3
9
>>> 3==3
True
>>> 3!=3
False
>>> 3 & 2
2
>>> 1 | 2
3
>>> +5
5
>>> 1/0
ZeroDivisionError: division by zero
>>> 5 % 0
ZeroDivisionError: division by zero
`)
}

func TestParallelAssignment(t *testing.T) {
	evaltest.Run(t, `
>>> a, b = 2, 3
>>> a, b
(2, 3)
>>> a, b = 2, 3
>>> a, b = b, a
>>> a, b
(3, 2)
>>> a = 1, 2
>>> a, (b, c) = 0, a
>>> a, b, c
(0, 1, 2)
>>> a, b = 1, 2, 3
ValueError: too many values to unpack
>>> a, b, c = 1, 2
ValueError: not enough values to unpack
`)
}

func TestWhile(t *testing.T) {
	evaltest.Run(t, `
>>> a = 0
>>> while a < 3:
...     a = a + 1
... else:
...     b = 1
>>> a, b
(3, 1)
>>> a = 0
>>> while a < 3:
...     a = a + 1
...     if a == 1: break
... else:
...     a = 0
>>> a
1
>>> a = 0
... while True:
...     a = a + 1
...     if a == 1: continue
...     break
... a
2
>>> i = 0
>>> while i < 3:
...     i = i + 1
... else:
...     i = -i
>>> i
-3
`)
}

func TestFor(t *testing.T) {
	evaltest.Run(t, `
>>> s = 0
>>> for i in 1, 2, 3:
...     s = s + i
... else:
...     s = -s
>>> s
-6
>>> s = 0
>>> for i in 1, 2, 3:
...     s = s + i
...     if i == 2:
...         break
... else: s = 0
>>> s
3
>>> s = 0
... for i in 1, 2, 3:
...     s = 1
...     continue
...     s = 2
... s
1
>>> kk, vv = 0, 0
>>> for k,v in {3: 1, 4: 2}:
...     kk = kk + k
...     vv = vv + v
>>> (kk, vv)
(7, 3)
>>> n = 0
>>> for c in 'abc':
...     n = n + 1
>>> n
3
>>> for c in 'ab':
...     print(c)
a
b
>>> for i in 5:
...     pass
TypeError: 'number' object is not iterable
`)
}

func TestIf(t *testing.T) {
	evaltest.Run(t, `
>>> a=1
>>> if a == 0:
...     a = a + 1
... elif a == 1:
...     a = a + 3
... else:
...     a = a + 5
>>> a
4
>>> a = 3; a = (1 if a > 2 else 4); a
1
>>> True, False, None
(True, False, None)
`)
}

func TestFunctions(t *testing.T) {
	evaltest.Run(t, `
>>> def f(): return 1
>>> f()
1
>>> def f(n): return n+1
>>> f(2)
3
>>> def f(x=2): return x
>>> f()
2
>>> def f(x=2): return x
>>> f(3)
3
>>> def g(a): return a
>>> g()
TypeError: g() takes 1 arguments (0 given)
>>> def g(a): return a
>>> g(1, 2)
TypeError: g() takes 1 arguments (2 given)
>>> def h(a, *rest): return (a, rest)
>>> h(1, 2, 3)
(1, (2, 3))
>>> def h(a, *rest): return (a, rest)
>>> h(1)
(1, ())
>>> y = 1
>>> def f(x=y): return x
>>> y = 2
>>> f()
2
>>> def fac(n):
...     if n == 0: return 1
...     return n * fac(n - 1)
>>> fac(10)
3628800
>>> def fac(n):
...     if n == 0:
...         return 1
...     return n * fac(n - 1)
>>> fac(11)
39916800
>>> def fib(n):
...     if n <= 2: return 1
...     return fib(n - 1) + fib(n - 2)
>>> fib(20)
6765
>>> 1()
TypeError: 'number' object is not callable
`)
}

func TestClosures(t *testing.T) {
	evaltest.Run(t, `
>>> def counter():
...     n = 0
...     def inc():
...         n = n + 1
...         return n
...     return inc
>>> c = counter()
>>> c(), c(), c()
(1, 2, 3)
`)
}

func TestGlobal(t *testing.T) {
	evaltest.Run(t, `
>>> x = 1
>>> def f():
...     global x
...     x = 2
...     return x
>>> f(), x
(2, 2)
`)
}

func TestStrings(t *testing.T) {
	evaltest.Run(t, `
>>> "Hallo, Welt"
'Hallo, Welt'
>>> "'" '"'
'\'"'
>>> "\n"
'\n'
>>> ''
''
>>> a = "abc"
>>> len(a)
3
>>> 'abc'[0]
'a'
>>> ''[-2]
IndexError: index out of range
>>> 'abc'[1:]
'bc'
>>> 'abc'[:-2]
'a'
>>> 'abcdef'[1:-1]
'bcde'
>>> 'abc'[::2]
UnimplementedError: slice step
`)
}

func TestCollections(t *testing.T) {
	evaltest.Run(t, `
>>> []
[]
>>> a = [1, [2], 3]; a[1:], a[:1]
([[2], 3], [1])
>>> len([]), len([1])
(0, 1)
>>> ()
()
>>> a = (1, (2,), 3); a[2:], a[:2]
((3,), (1, (2,)))
>>> len(()), len((3,)), len(((), ()))
(0, 1, 2)
>>> {}
{}
>>> a = {'a': 3, 'b': 4}
>>> len(a), a['a'], a['b'], a['c']
(2, 3, 4, None)
>>> {1}
{1}
>>> {1,2,2,1}
{1, 2}
>>> [1, 2][5]
IndexError: index out of range
>>> len(1)
TypeError: object of type 'number' has no len()
>>> {[1]: 2}
TypeError: unhashable type: 'list'
`)
}

func TestContainment(t *testing.T) {
	evaltest.Run(t, `
>>> 3 in [1, 2, 3], 3 not in [1, 2]
(True, True)
>>> 3 in (1, 2, 3), 3 not in (1, 2)
(True, True)
>>> 3 in {1, 2, 3}, 3 not in {1, 2}
(True, True)
>>> 3 in {1: '1', 2: '2', 3: '3'}, 3 not in {1: 1, 2: 2}
(True, True)
>>> 'bc' in 'abcd', 'x' in 'abc'
(True, False)
>>> a = [1]
>>> b = a
>>> a is b, a is [1], 3 is 3, a is not b
(True, False, True, False)
`)
}

func TestLogic(t *testing.T) {
	evaltest.Run(t, `
>>> False and False
False
>>> True and False
False
>>> False and True
False
>>> True and True
True
>>> False or False
False
>>> True or False
True
>>> False or True
True
>>> True or True
True
>>> not True, not False
(False, True)
>>> not not True
True
>>> 1 < 4 < 5
True
>>> 1 < 1 < 5, 1 < 5 < 5
(False, False)
>>> 4 >= 3
True
`)
}

func TestExceptions(t *testing.T) {
	evaltest.Run(t, `
>>> a = 0
>>> try:
...     raise
...     a = 4
... except:
...     a = 1
... else:
...     a = a + 1
>>> a
1
>>> a = 0
>>> try:
...     try:
...         raise
...         a = 4
...     finally:
...         a = 1
... except:
...     a = a + 1
>>> a
2
>>> a = 0
>>> try:
...     a = 4
... except:
...     a = 1
... else:
...     a = a + 1
>>> a
5
>>> a = 0
... try:
...     raise 2
... except 1:
...     a = 1
... except 2 as b:
...     a = b
... a
2
>>> x = 0
>>> try:
...     raise 'e'
... except 'e' as v:
...     x = 1
>>> x
1
>>> try:
...     zz
... except 'NameError: name \'zz\' is not defined':
...     print('caught')
caught
>>> raise 'boom'
boom
>>> def f():
...     try:
...         return 1
...     finally:
...         print('fin')
>>> f()
fin
1
>>> x = 0
>>> while True:
...     try:
...         break
...     finally:
...         x = 1
>>> x
1
`)
}

func TestAssert(t *testing.T) {
	evaltest.Run(t, `
>>> assert True
>>> assert True, "message"
>>> assert False
AssertionError
>>> assert False, "message"
AssertionError: message
>>> assert True, zz
`)
}

func TestClasses(t *testing.T) {
	evaltest.Run(t, `
>>> class A:
...     def m(self): return 1
>>> class B(A):
...     def n(self):
...         return 2
>>> a, b = A(), B()
>>> a.m(), b.m(), b.n()
(1, 1, 2)
>>> class A: pass
>>> class B (A): pass
>>> A, B.__superclass__, B.__superclass__.__superclass__
(<class 'A'>, <class 'A'>, None)
>>> class C:
...     def __init__(self, x): self.x = x
...     def m(self): return self.x + 1
>>> c = C(7)
>>> c.x, c.m()
(7, 8)
>>> class A:
...     def greet(self): return 'hi'
>>> class B(A): pass
>>> B().greet()
'hi'
>>> class A: pass
>>> a = A()
>>> a.__class__
<class 'A'>
>>> a.missing
AttributeError: 'A' object has no attribute 'missing'
>>> class D(1): pass
TypeError: superclass must be a class or None, not 'number'
`)
}

func TestBuiltins(t *testing.T) {
	evaltest.Run(t, `
>>> print(1, 'a')
1 a
>>> print('x')
x
>>> range(3)
[0, 1, 2]
>>> range(2, 5)
[2, 3, 4]
>>> range(5, 0, -2)
[5, 3, 1]
>>> range(1, 2, 0)
ValueError: range() arg 3 must not be zero
>>> chr(65), ord('A')
('A', 65)
>>> slice(1, 2, 3)
(1, 2, 3)
>>> a = {1: 2}
>>> b = len(a)
>>> del(a, 1)
>>> b, len(a)
(1, 0)
>>> l = [1, 2, 3, 4]
>>> del(l, 0)
>>> l
[2, 3, 4]
>>> del(l, slice(0, 2, None))
>>> l
[4]
>>> hasattr({1: 2}, 1), hasattr({1: 2}, 3)
(True, False)
>>> hasattr([1, 2], 1), hasattr([1, 2], 5)
(True, False)
>>> zz
NameError: name 'zz' is not defined
`)
}

func TestAugmentedAssignment(t *testing.T) {
	evaltest.Run(t, `
>>> a, b, c, d = 1, 2, 4, 8
... a += 5
... b -= 5
... c *= 3
... d /= 2
... (a, b, c, d)
(6, -3, 12, 4.0)
>>> a = 17; a %= 7; a
3
>>> a = 192; a &= 224; a |= 130; a
194
>>> zz += 1
NameError: name 'zz' is not defined
>>> def loud(): print('rhs'); return 1
>>> zz += loud()
NameError: name 'zz' is not defined
>>> def note(v):
...     print(v)
...     return 1
>>> a = 10
>>> a += note('rhs ran')
rhs ran
>>> a
11
>>> l = [1]
>>> l[0] += 1
UnimplementedError: assignment to subscript
>>> l[0] = 2
UnimplementedError: assignment to subscript
`)
}

func TestFlowOutsideContext(t *testing.T) {
	evaltest.Run(t, `
>>> break
SyntaxError: 'break' outside loop
>>> continue
SyntaxError: 'continue' outside loop
>>> return 1
SyntaxError: 'return' outside function
>>> def f(): break
>>> n = 0
>>> while n < 3:
...     n = n + 1
...     f()
SyntaxError: 'break' outside loop
>>> n
1
>>> def g(): continue
>>> for i in 1, 2:
...     g()
SyntaxError: 'continue' outside loop
>>> def h():
...     while True:
...         break
...     return 7
>>> h()
7
`)
}

func TestImportErrors(t *testing.T) {
	evaltest.Run(t, `
>>> import a
ImportError: No module named 'a'
>>> import a as x
ImportError: No module named 'a'
>>> import a, b,
ImportError: No module named 'a'
>>> import a, b as x
ImportError: No module named 'a'
>>> from a import *
ImportError: No module named 'a'
>>> from a import a
ImportError: No module named 'a'
>>> from a import a, b as x, c,
ImportError: No module named 'a'
`)
}

func TestImportFromLibDir(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.MustWriteFile(t, "greet.py", "def hello():\n    return 'hi'\nanswer = 42\n")
	evaltest.RunWith(t, `
>>> import greet
>>> greet.answer
42
>>> greet.hello()
'hi'
>>> from greet import answer as a
>>> a
42
>>> from greet import *
>>> answer
42
>>> import greet as g
>>> g.answer
42
>>> from greet import missing
ImportError: cannot import name 'missing'
`, func(ev *eval.Evaler) {
		ev.LibDirs = []string{dir}
	})
}

func TestPreinstalledModules(t *testing.T) {
	evaltest.Run(t, `
>>> import time
>>> time
<module 'time'>
>>> import os
>>> os.getpid() > 0
True
>>> import random
>>> random.seed(42)
>>> r = random.randint(1, 6)
>>> 1 <= r <= 6
True
>>> import copy
>>> l = [1, 2]
>>> m = copy.copy(l)
>>> m is l, m == l
(False, True)
>>> import sys
>>> hasattr(sys, 'modules')
True
>>> import atexit
>>> def farewell(): print('bye')
>>> atexit.register(farewell)
<function farewell>
>>> import curses
>>> scr = curses.initscr()
>>> scr.__class__
<class 'screen'>
>>> scr.addstr(0, 0, 'hi\n')
hi
>>> curses.endwin()
`)
}

func TestDialectErrors(t *testing.T) {
	evaltest.Run(t, `
>>> 'a' + 1
TypeError: unsupported operand type(s) for +: 'str' and 'number'
>>> 'a' < 'b'
TypeError: '<' not supported between instances of 'str' and 'str'
>>> -'a'
TypeError: bad operand type for unary -: 'str'
>>> 1.5 | 2
TypeError: unsupported operand type(s) for |: 'number' and 'number'
`)
}
